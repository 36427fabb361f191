package accounting

import (
	"fmt"

	"github.com/jainutkarshh/StockFlow-ERP/internal/core/domain"
	"github.com/shopspring/decimal"
)

// snapTolerance is one minor currency unit. Any computed balance whose
// magnitude is below it is treated as exactly zero. This absorbs drift from
// repeated additions of decimal amounts and must be applied everywhere a
// balance is compared for "settled" status, not just for display.
var snapTolerance = decimal.RequireFromString("0.01")

// SnapZero snaps a balance below the tolerance to exactly zero.
// Applying it twice yields the same result.
func SnapZero(balance decimal.Decimal) decimal.Decimal {
	if balance.Abs().LessThan(snapTolerance) {
		return decimal.Zero
	}
	return balance
}

// CurrentBalance computes a party's signed balance from its opening balance
// and the three aggregate fact sums. The sign convention depends on the role:
//
//	client:   opening + sales - purchases - payments
//	supplier: opening - purchases + payments
//
// A positive client balance is money owed to us; a negative supplier balance
// is money we owe. Sales do not enter the supplier formula. The result is
// snapped to zero within the tolerance.
func CurrentBalance(partyType domain.PartyType, opening, sales, purchases, payments decimal.Decimal) decimal.Decimal {
	var balance decimal.Decimal
	if partyType == domain.PartySupplier {
		balance = opening.Sub(purchases).Add(payments)
	} else {
		balance = opening.Add(sales).Sub(purchases).Sub(payments)
	}
	return SnapZero(balance)
}

// EntryDelta returns the signed contribution of one ledger entry to the
// running balance. It applies the same convention as CurrentBalance,
// incrementally: only the payment sign differs between the two roles.
func EntryDelta(partyType domain.PartyType, kind domain.EntryKind, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case domain.EntrySale:
		return debit, nil
	case domain.EntryPurchase:
		return credit.Neg(), nil
	case domain.EntryPayment:
		if partyType == domain.PartySupplier {
			return credit, nil
		}
		return credit.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown ledger entry kind %q", kind)
	}
}

// SummaryTotals folds per-party balances into portfolio totals: receivable is
// the sum of positive client balances, payable the sum of negative supplier
// balances as a positive magnitude.
func SummaryTotals(balances []domain.PartyBalance) domain.BalanceSummary {
	summary := domain.BalanceSummary{
		TotalReceivable: decimal.Zero,
		TotalPayable:    decimal.Zero,
	}
	for _, b := range balances {
		switch b.PartyType {
		case domain.PartyClient:
			if b.CurrentBalance.IsPositive() {
				summary.TotalReceivable = summary.TotalReceivable.Add(b.CurrentBalance)
			}
		case domain.PartySupplier:
			if b.CurrentBalance.IsNegative() {
				summary.TotalPayable = summary.TotalPayable.Add(b.CurrentBalance.Neg())
			}
		}
	}
	return summary
}
