package sales

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// splitTolerance es la diferencia admitida entre cashAmount+momoAmount y el total.
var splitTolerance = decimal.NewFromFloat(0.01)

// PaymentBreakdown totaliza ventas por método de pago.
// Los pagos mixtos (momo/cash) suman cada parte a su método y además se
// reportan aparte en SplitCash y SplitMomo.
type PaymentBreakdown struct {
	Cash             decimal.Decimal
	Momo             decimal.Decimal
	Credit           decimal.Decimal
	Unspecified      decimal.Decimal
	SplitCash        decimal.Decimal
	SplitMomo        decimal.Decimal
	MismatchedSplits int // pagos mixtos cuyas partes no cuadran con las líneas
}

// PaymentTotals agrupa los ingresos de los registros por método de pago.
func PaymentTotals(records []entity.Order) PaymentBreakdown {
	out := PaymentBreakdown{
		Cash: decimal.Zero, Momo: decimal.Zero, Credit: decimal.Zero,
		Unspecified: decimal.Zero, SplitCash: decimal.Zero, SplitMomo: decimal.Zero,
	}
	for _, r := range records {
		revenue := RecordRevenue(r)
		switch strings.ToLower(strings.TrimSpace(r.PaymentMethod)) {
		case entity.PaymentCash:
			out.Cash = out.Cash.Add(revenue)
		case entity.PaymentMomo:
			out.Momo = out.Momo.Add(revenue)
		case entity.PaymentCredit:
			out.Credit = out.Credit.Add(revenue)
		case entity.PaymentMomoCash:
			cash := ParseNumber(r.CashAmount)
			momo := ParseNumber(r.MomoAmount)
			out.Cash = out.Cash.Add(cash)
			out.Momo = out.Momo.Add(momo)
			out.SplitCash = out.SplitCash.Add(cash)
			out.SplitMomo = out.SplitMomo.Add(momo)
			if cash.Add(momo).Sub(revenue).Abs().GreaterThan(splitTolerance) {
				out.MismatchedSplits++
			}
		default:
			out.Unspecified = out.Unspecified.Add(revenue)
		}
	}
	return out
}
