package service

import "educrm/backend/internal/model"

// Pure finance computations over already-loaded collections. The record store
// offers no server-side filtering, so every view and sum is derived here,
// deterministically, from full slices plus a reference date. Nothing in this
// file touches a repository.

// upcomingWindowDays bounds the "upcoming" classification: an unpaid payment
// counts as upcoming when it falls due within the next 7 days (inclusive).
const upcomingWindowDays = 7

// Payment views selectable on the payments screen.
const (
	ViewAll      = "all"
	ViewOverdue  = "overdue"
	ViewUpcoming = "upcoming"
	ViewPaid     = "paid"
)

// FinanceTotals are the derived sums behind the dashboard. Monthly figures
// are bucketed by the reference month token; total figures ignore dates.
type FinanceTotals struct {
	MonthlyRevenue  int64
	MonthlyExpenses int64
	TotalDebt       int64
	TotalIncome     int64
	TotalExpenses   int64
	NetProfit       int64
}

// aggregateFinance folds payments and expenses into FinanceTotals for the
// given "2006-01" month token. Empty inputs yield all-zero totals.
func aggregateFinance(payments []model.Payment, expenses []model.Expense, month string) FinanceTotals {
	var t FinanceTotals

	for i := range payments {
		p := &payments[i]
		switch p.Status {
		case model.PaymentPaid:
			t.TotalIncome += p.Amount
			if p.EffectiveDate().Month() == month {
				t.MonthlyRevenue += p.Amount
			}
		case model.PaymentUnpaid:
			t.TotalDebt += p.Amount
		}
	}

	for i := range expenses {
		e := &expenses[i]
		t.TotalExpenses += e.Amount
		if e.Date.Month() == month {
			t.MonthlyExpenses += e.Amount
		}
	}

	t.NetProfit = t.TotalIncome - t.TotalExpenses
	return t
}

// matchesView reports whether a payment belongs to the given view as of
// today. Unpaid payments classify by days until due: negative is overdue,
// zero through upcomingWindowDays is upcoming. The paid view ignores dates.
func matchesView(p *model.Payment, view string, today model.Date) bool {
	switch view {
	case ViewAll, "":
		return true
	case ViewPaid:
		return p.Status == model.PaymentPaid
	case ViewOverdue:
		return p.Status == model.PaymentUnpaid && p.DueDate.DaysUntil(today) < 0
	case ViewUpcoming:
		diff := p.DueDate.DaysUntil(today)
		return p.Status == model.PaymentUnpaid && diff >= 0 && diff <= upcomingWindowDays
	}
	return false
}

// classifyPayments filters a payment slice down to one view.
func classifyPayments(payments []model.Payment, view string, today model.Date) []model.Payment {
	result := make([]model.Payment, 0, len(payments))
	for i := range payments {
		if matchesView(&payments[i], view, today) {
			result = append(result, payments[i])
		}
	}
	return result
}

// bucketStats sums count and amount for one view.
func bucketStats(payments []model.Payment, view string, today model.Date) (count int, amount int64) {
	for i := range payments {
		if matchesView(&payments[i], view, today) {
			count++
			amount += payments[i].Amount
		}
	}
	return count, amount
}
