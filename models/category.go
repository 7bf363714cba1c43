package models

// Category is a user-defined expense grouping. Each user's category set is
// fully independent; expenses reference categories by name and an orphaned
// reference is tolerated (rendered as "Unknown" by clients).
type Category struct {
	ID     string `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
