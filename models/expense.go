package models

// Expense is a single spending record owned by exactly one user.
//
// The ID is an opaque caller-supplied token (the web client uses a
// time-based one); the server only guarantees uniqueness per user by
// primary key. Date is a calendar date in "YYYY-MM-DD" form and CreatedAt
// an RFC 3339 timestamp, both kept as strings to match the wire format
// and to make the date-descending sort lexicographic.
type Expense struct {
	ID          string  `json:"id"`
	UserID      int64   `json:"-"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}

// ExpenseFilter narrows an expense listing. Zero values mean "no filter";
// the owning user is always applied separately and is never optional.
type ExpenseFilter struct {
	// Category limits results to expenses referencing this category name.
	Category string

	// From is the inclusive lower date bound ("YYYY-MM-DD").
	From string

	// To is the inclusive upper date bound ("YYYY-MM-DD").
	To string
}
