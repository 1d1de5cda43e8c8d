package dto

// ── Finance DTOs ──

// FinanceSummaryResponse is the dashboard summary. Monthly figures cover the
// reference month; total figures are unbounded.
type FinanceSummaryResponse struct {
	Month           string `json:"month"` // reference month, "2006-01"
	StudentsCount   int    `json:"students_count"`
	TeachersCount   int    `json:"teachers_count"`
	ActiveGroups    int    `json:"active_groups"`
	MonthlyRevenue  int64  `json:"monthly_revenue"`
	MonthlyExpenses int64  `json:"monthly_expenses"`
	TotalDebt       int64  `json:"total_debt"`
	TotalIncome     int64  `json:"total_income"`
	TotalExpenses   int64  `json:"total_expenses"`
	NetProfit       int64  `json:"net_profit"`
}
