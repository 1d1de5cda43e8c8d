package dto

// ── Expense DTOs ──

// CreateExpenseRequest records an outgoing cost.
type CreateExpenseRequest struct {
	Title    string `json:"title"    binding:"required,min=1,max=200"`
	Amount   int64  `json:"amount"   binding:"required,min=1"`
	Date     string `json:"date"     binding:"required,datetime=2006-01-02"`
	Category string `json:"category" binding:"required,oneof=rent salary utility office other"`
	Comment  string `json:"comment"  binding:"omitempty,max=2000"`
}

// ExpenseResponse is the expense payload returned by the API.
type ExpenseResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"`
	Category  string `json:"category"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
