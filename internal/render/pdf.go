package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 5.5
	serviceRowMin = 8.0
	serviceRowPad = 1.25
)

// PDF writes the preview as an A4 document. The document is built in memory
// and only copied to w once complete.
func PDF(w io.Writer, pv Preview) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Proposta Comercial "+pv.ProposalNumber), false)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pdfMargin
	half := contentW / 2

	// Header: title on the left, provider on the right.
	top := pdf.GetY()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(half, 10, "PROPOSTA COMERCIAL", "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(75, 85, 99)
	pdf.MultiCell(half, pdfLineHeight, tr("Projeto: "+pv.ProjectTitle), "", "L", false)
	leftBottom := pdf.GetY()

	pdf.SetXY(pdfMargin+half, top)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(55, 65, 81)
	pdf.MultiCell(half, 7, tr(pv.Provider.CompanyName), "", "R", false)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetX(pdfMargin + half)
	pdf.MultiCell(half, 4.5, tr(pv.Provider.Address), "", "R", false)
	pdf.SetX(pdfMargin + half)
	pdf.MultiCell(half, 4.5, tr(pv.Provider.Email), "", "R", false)

	pdf.SetY(max(leftBottom, pdf.GetY()) + 3)
	pdf.SetDrawColor(31, 41, 55)
	pdf.SetLineWidth(0.6)
	pdf.Line(pdfMargin, pdf.GetY(), pdfMargin+contentW, pdf.GetY())
	pdf.Ln(6)

	// Proposal info boxes.
	boxW := (contentW - 8) / 3
	infos := [][2]string{
		{"Nº da Proposta", pv.ProposalNumber},
		{"Data de Emissão", pv.IssueDate},
		{"Válida Até", pv.ValidUntil},
	}
	pdf.SetFillColor(249, 250, 251)
	y := pdf.GetY()
	for i, info := range infos {
		x := pdfMargin + float64(i)*(boxW+4)
		pdf.SetXY(x, y)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(boxW, 6, tr(info[0]), "", 2, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(31, 41, 55)
		pdf.CellFormat(boxW, 7, tr(info[1]), "", 0, "L", true, 0, "")
	}
	pdf.SetXY(pdfMargin, y+17)

	// Client.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(contentW, 5, "PARA", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(31, 41, 55)
	pdf.MultiCell(contentW, 6, tr(pv.Client.CompanyName), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(75, 85, 99)
	for _, line := range []string{"A/C: " + pv.Client.Name, pv.Client.Address, pv.Client.Email} {
		pdf.MultiCell(contentW, pdfLineHeight, tr(line), "", "L", false)
	}
	pdf.Ln(6)

	// Introduction.
	pdf.SetTextColor(55, 65, 81)
	pdf.MultiCell(contentW, pdfLineHeight, tr(pv.Introduction), "", "L", false)
	pdf.Ln(6)

	// Services table.
	cols := []float64{contentW * 0.46, contentW * 0.12, contentW * 0.21, contentW * 0.21}
	pdf.SetFillColor(31, 41, 55)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"Descrição do Serviço", "Qtd.", "Preço Unit.", "Total"} {
		align := "R"
		switch i {
		case 0:
			align = "L"
		case 1:
			align = "C"
		}
		pdf.CellFormat(cols[i], 8, tr(h), "", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(31, 41, 55)
	pdf.SetDrawColor(229, 231, 235)
	pdf.SetLineWidth(0.2)
	_, pageH := pdf.GetPageSize()
	for _, line := range pv.Lines {
		desc := tr(line.Description)
		h := serviceRowHeight(pdf, desc, cols[0])
		if pdf.GetY()+h > pageH-pdfMargin {
			pdf.AddPage()
		}
		x, y := pdf.GetXY()
		pdf.SetXY(x, y+serviceRowPad)
		pdf.MultiCell(cols[0], pdfLineHeight, desc, "", "L", false)
		pdf.SetXY(x+cols[0], y)
		pdf.CellFormat(cols[1], h, line.Quantity, "", 0, "C", false, 0, "")
		pdf.CellFormat(cols[2], h, tr(line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3], h, tr(line.Total), "", 0, "R", false, 0, "")
		pdf.Line(x, y+h, x+contentW, y+h)
		pdf.SetXY(x, y+h)
	}
	pdf.Ln(4)

	// Totals.
	totalsX := pdfMargin + contentW - 80
	totalRow := func(label, value string, size float64, fill bool) {
		pdf.SetX(totalsX)
		pdf.SetFont("Helvetica", "B", size)
		pdf.CellFormat(40, 8, tr(label), "", 0, "L", fill, 0, "")
		pdf.CellFormat(40, 8, tr(value), "", 1, "R", fill, 0, "")
	}
	pdf.SetFillColor(243, 244, 246)
	totalRow("Subtotal:", pv.Subtotal, 10, false)
	if pv.ShowTax {
		totalRow("Impostos:", pv.Tax, 10, false)
	}
	totalRow("Total:", pv.Total, 13, true)
	pdf.Ln(8)

	// Terms.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, tr("Termos e Condições"), "B", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(75, 85, 99)
	pdf.MultiCell(contentW, 4.8, tr(pv.Terms), "", "L", false)
	pdf.Ln(20)

	// Signature.
	sigW := 64.0
	sigX := pdfMargin + (contentW-sigW)/2
	pdf.SetDrawColor(156, 163, 175)
	pdf.SetLineWidth(0.5)
	pdf.Line(sigX, pdf.GetY(), sigX+sigW, pdf.GetY())
	pdf.Ln(2)
	pdf.SetX(sigX)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(sigW, 5, tr(pv.Provider.Name), "", 2, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(sigW, 5, tr(pv.Provider.CompanyName), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// serviceRowHeight is the height of a services table row whose description
// wraps within width using the current font.
func serviceRowHeight(pdf *gofpdf.Fpdf, desc string, width float64) float64 {
	lines := max(len(pdf.SplitLines([]byte(desc), width)), 1)
	return max(serviceRowMin, float64(lines)*pdfLineHeight+2*serviceRowPad)
}
