package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/require"
)

func TestServiceRowHeight_WrapsLongDescriptions(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)

	require.Equal(t, serviceRowMin, serviceRowHeight(pdf, "Design UI/UX", 80))
	require.Equal(t, serviceRowMin, serviceRowHeight(pdf, "", 80))

	long := strings.Repeat("Integração com gateway de pagamento ", 8)
	lines := len(pdf.SplitLines([]byte(long), 80))
	require.Greater(t, lines, 1)
	require.Equal(t, float64(lines)*pdfLineHeight+2*serviceRowPad, serviceRowHeight(pdf, long, 80))
}

func TestPDF_LongDescriptions(t *testing.T) {
	pv := Preview{
		ProposalNumber: "PROP-002",
		Lines: []PreviewLine{{
			Description: strings.Repeat("Desenvolvimento de módulo sob medida ", 30),
			Quantity:    "1",
			UnitPrice:   "R$ 1,00",
			Total:       "R$ 1,00",
		}},
	}
	for range 40 {
		pv.Lines = append(pv.Lines, pv.Lines[0])
	}

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, pv))
	require.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}
