package service

import (
	"testing"
	"time"

	"educrm/backend/internal/model"
)

// ── test fixtures ──

var calcToday = model.NewDate(2026, time.March, 15)

func unpaidDueOn(d model.Date, amount int64) model.Payment {
	return model.Payment{Status: model.PaymentUnpaid, DueDate: d, Amount: amount}
}

func paidOn(d model.Date, amount int64) model.Payment {
	return model.Payment{Status: model.PaymentPaid, DueDate: d, PaidAt: &d, Amount: amount}
}

// ── classification ──

func TestMatchesView_OverdueBoundary(t *testing.T) {
	yesterday := unpaidDueOn(model.NewDate(2026, time.March, 14), 100)
	dueToday := unpaidDueOn(calcToday, 100)

	if !matchesView(&yesterday, ViewOverdue, calcToday) {
		t.Error("due yesterday should be overdue")
	}
	if matchesView(&dueToday, ViewOverdue, calcToday) {
		t.Error("due today should not be overdue")
	}
	if !matchesView(&dueToday, ViewUpcoming, calcToday) {
		t.Error("due today should be upcoming")
	}
}

func TestMatchesView_UpcomingWindow(t *testing.T) {
	day7 := unpaidDueOn(model.NewDate(2026, time.March, 22), 100)
	day8 := unpaidDueOn(model.NewDate(2026, time.March, 23), 100)

	if !matchesView(&day7, ViewUpcoming, calcToday) {
		t.Error("due in 7 days should be upcoming")
	}
	if matchesView(&day8, ViewUpcoming, calcToday) {
		t.Error("due in 8 days should fall outside the upcoming window")
	}
	if matchesView(&day8, ViewOverdue, calcToday) {
		t.Error("due in 8 days is not overdue")
	}
	// A distant unpaid payment is visible in the all view only.
	if !matchesView(&day8, ViewAll, calcToday) {
		t.Error("all view should include every payment")
	}
}

func TestMatchesView_PaidIgnoresDates(t *testing.T) {
	longPast := paidOn(model.NewDate(2020, time.January, 1), 100)

	if !matchesView(&longPast, ViewPaid, calcToday) {
		t.Error("paid payment should match paid view regardless of date")
	}
	if matchesView(&longPast, ViewOverdue, calcToday) {
		t.Error("paid payment should never be overdue")
	}
	if matchesView(&longPast, ViewUpcoming, calcToday) {
		t.Error("paid payment should never be upcoming")
	}
}

func TestClassifyPayments_EmptyViewMeansAll(t *testing.T) {
	payments := []model.Payment{
		unpaidDueOn(model.NewDate(2026, time.March, 1), 100),
		paidOn(model.NewDate(2026, time.March, 10), 200),
	}

	all := classifyPayments(payments, "", calcToday)
	if len(all) != 2 {
		t.Errorf("empty view should return everything, got %d", len(all))
	}
}

func TestBucketStats_Sums(t *testing.T) {
	payments := []model.Payment{
		unpaidDueOn(model.NewDate(2026, time.March, 10), 100_000), // overdue
		unpaidDueOn(model.NewDate(2026, time.March, 1), 50_000),   // overdue
		unpaidDueOn(model.NewDate(2026, time.March, 18), 70_000),  // upcoming
		paidOn(model.NewDate(2026, time.March, 5), 200_000),
	}

	count, amount := bucketStats(payments, ViewOverdue, calcToday)
	if count != 2 || amount != 150_000 {
		t.Errorf("overdue bucket: got count=%d amount=%d", count, amount)
	}
	count, amount = bucketStats(payments, ViewUpcoming, calcToday)
	if count != 1 || amount != 70_000 {
		t.Errorf("upcoming bucket: got count=%d amount=%d", count, amount)
	}
	count, amount = bucketStats(payments, ViewPaid, calcToday)
	if count != 1 || amount != 200_000 {
		t.Errorf("paid bucket: got count=%d amount=%d", count, amount)
	}
}

// ── aggregation ──

func TestAggregateFinance_EmptyCollections(t *testing.T) {
	totals := aggregateFinance(nil, nil, "2026-03")

	if totals != (FinanceTotals{}) {
		t.Errorf("empty inputs should yield all-zero totals, got %+v", totals)
	}
}

func TestAggregateFinance_MonthBuckets(t *testing.T) {
	payments := []model.Payment{
		paidOn(model.NewDate(2026, time.March, 5), 500_000),
		paidOn(model.NewDate(2026, time.February, 20), 300_000),
		unpaidDueOn(model.NewDate(2026, time.March, 1), 150_000),
	}
	expenses := []model.Expense{
		{Amount: 200_000, Date: model.NewDate(2026, time.March, 3)},
		{Amount: 90_000, Date: model.NewDate(2026, time.January, 10)},
	}

	totals := aggregateFinance(payments, expenses, "2026-03")

	if totals.MonthlyRevenue != 500_000 {
		t.Errorf("monthly revenue: got %d", totals.MonthlyRevenue)
	}
	if totals.TotalIncome != 800_000 {
		t.Errorf("total income: got %d", totals.TotalIncome)
	}
	if totals.TotalDebt != 150_000 {
		t.Errorf("total debt: got %d", totals.TotalDebt)
	}
	if totals.MonthlyExpenses != 200_000 {
		t.Errorf("monthly expenses: got %d", totals.MonthlyExpenses)
	}
	if totals.TotalExpenses != 290_000 {
		t.Errorf("total expenses: got %d", totals.TotalExpenses)
	}
	if totals.NetProfit != 800_000-290_000 {
		t.Errorf("net profit: got %d", totals.NetProfit)
	}
}

// Monthly revenue can never exceed total income: the month bucket is a subset
// of the paid ledger.
func TestAggregateFinance_MonthlyRevenueSubset(t *testing.T) {
	payments := []model.Payment{
		paidOn(model.NewDate(2026, time.March, 1), 100),
		paidOn(model.NewDate(2026, time.March, 31), 200),
		paidOn(model.NewDate(2025, time.December, 31), 400),
	}

	totals := aggregateFinance(payments, nil, "2026-03")
	if totals.MonthlyRevenue > totals.TotalIncome {
		t.Errorf("monthly revenue %d exceeds total income %d", totals.MonthlyRevenue, totals.TotalIncome)
	}
	if totals.MonthlyRevenue != 300 {
		t.Errorf("monthly revenue: got %d", totals.MonthlyRevenue)
	}
}

// A payment settled in a different month than it fell due counts toward the
// settlement month, not the due month.
func TestAggregateFinance_SettledDateWins(t *testing.T) {
	paidAt := model.NewDate(2026, time.March, 2)
	payments := []model.Payment{
		{
			Status:  model.PaymentPaid,
			DueDate: model.NewDate(2026, time.February, 15),
			PaidAt:  &paidAt,
			Amount:  120_000,
		},
	}

	feb := aggregateFinance(payments, nil, "2026-02")
	if feb.MonthlyRevenue != 0 {
		t.Errorf("February revenue should be 0, got %d", feb.MonthlyRevenue)
	}
	mar := aggregateFinance(payments, nil, "2026-03")
	if mar.MonthlyRevenue != 120_000 {
		t.Errorf("March revenue should be 120000, got %d", mar.MonthlyRevenue)
	}
}

// ── Date.DaysUntil ──

func TestDaysUntil_Boundaries(t *testing.T) {
	today := model.NewDate(2026, time.March, 15)

	cases := []struct {
		due  model.Date
		want int
	}{
		{model.NewDate(2026, time.March, 15), 0},
		{model.NewDate(2026, time.March, 16), 1},
		{model.NewDate(2026, time.March, 14), -1},
		{model.NewDate(2026, time.March, 22), 7},
		{model.NewDate(2026, time.March, 23), 8},
		{model.NewDate(2026, time.April, 15), 31},
	}

	for _, c := range cases {
		if got := c.due.DaysUntil(today); got != c.want {
			t.Errorf("DaysUntil(%s): got %d, want %d", c.due, got, c.want)
		}
	}
}
