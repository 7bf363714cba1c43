package service

import "github.com/expnse/expnse-server/models"

// DefaultCategories returns the fixed category set seeded for every new
// user on their first category read. Names, colors, and glyphs are the
// ones the web client shipped with; the ids "1" through "8" double as the
// canonical display order.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Food & Dining", Color: "#ef4444", Icon: "🍔"},
		{ID: "2", Name: "Transportation", Color: "#3b82f6", Icon: "🚗"},
		{ID: "3", Name: "Shopping", Color: "#8b5cf6", Icon: "🛍️"},
		{ID: "4", Name: "Entertainment", Color: "#ec4899", Icon: "🎬"},
		{ID: "5", Name: "Bills & Utilities", Color: "#f59e0b", Icon: "💡"},
		{ID: "6", Name: "Healthcare", Color: "#10b981", Icon: "🏥"},
		{ID: "7", Name: "Education", Color: "#06b6d4", Icon: "📚"},
		{ID: "8", Name: "Other", Color: "#6b7280", Icon: "📌"},
	}
}
