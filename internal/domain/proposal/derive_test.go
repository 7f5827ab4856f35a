package proposal_test

import (
	"math"
	"testing"
	"time"

	"github.com/rpggio/proposta/internal/domain/proposal"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	require.Equal(t, float64(0), proposal.Subtotal(nil))
	require.Equal(t, float64(0), proposal.Subtotal([]proposal.ServiceItem{}))
	require.Equal(t, float64(200), proposal.Subtotal([]proposal.ServiceItem{{Quantity: 2, UnitPrice: 100}}))
}

func TestTotal(t *testing.T) {
	require.Equal(t, 1234.5, proposal.Total(1234.5, 0))
	require.InDelta(t, 105.0, proposal.Total(100, 0.05), 1e-9)
}

func TestComputeTotals_DefaultProposal(t *testing.T) {
	p := proposal.Default(fixedNow)
	totals := proposal.ComputeTotals(p, 0)
	require.Equal(t, 12200.0, totals.Subtotal)
	require.Equal(t, 12200.0, totals.Total)
	require.Equal(t, float64(0), totals.Tax)
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "05/03/2024", proposal.FormatDate("2024-03-05"))
	require.Equal(t, "", proposal.FormatDate(""))
	require.Equal(t, "amanhã", proposal.FormatDate("amanhã"))
}

func TestFormatCurrency(t *testing.T) {
	require.Equal(t, "R$ 1.234,50", proposal.FormatCurrency(1234.5))
	require.Equal(t, "R$ 0,00", proposal.FormatCurrency(0))
	require.Equal(t, "R$ 12.200,00", proposal.FormatCurrency(12200))
}

func TestFormatQuantity(t *testing.T) {
	require.Equal(t, "1", proposal.FormatQuantity(1))
	require.Equal(t, "2.5", proposal.FormatQuantity(2.5))
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"":      0,
		"abc":   0,
		"12":    12,
		" 7.5 ": 7.5,
		"12,5":  12.5,
		"-3":    0,
		"Inf":   0,
		"1e3":   1000,
	}
	for raw, want := range cases {
		require.Equal(t, want, proposal.ParseAmount(raw), "input %q", raw)
	}
}

func TestParseAmount_NegativeZero(t *testing.T) {
	for _, raw := range []string{"-0", "-0,0", "-0.00"} {
		v := proposal.ParseAmount(raw)
		require.False(t, math.Signbit(v), "input %q", raw)
		require.Equal(t, "0", proposal.FormatQuantity(v), "input %q", raw)
	}
}

func TestDefault(t *testing.T) {
	p := proposal.Default(time.Date(2024, 12, 20, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600)))
	require.Equal(t, "2024-12-21", p.IssueDate)
	require.Equal(t, "2025-01-20", p.ValidUntil)
	require.Len(t, p.Services, 4)
	require.Equal(t, int64(4), proposal.MaxServiceID(p))
}

func TestClockIDs_StrictlyIncreasing(t *testing.T) {
	now := time.UnixMilli(10)
	ids := proposal.NewClockIDs(func() time.Time { return now }, 0)

	require.Equal(t, int64(10), ids.NextID())
	require.Equal(t, int64(11), ids.NextID())

	floor := proposal.NewClockIDs(func() time.Time { return now }, 500)
	require.Equal(t, int64(501), floor.NextID())
}
