package models

// Category is a labeled, colored grouping applied to goals. Two categories
// are the same only when the name matches case-sensitively and the hex color
// matches case-insensitively, so "Savings" (blue) and "savings" (red) are
// distinct entries.
type Category struct {
	Base
	UserID string `gorm:"type:uuid" json:"user_id,omitempty"`
	Name   string `gorm:"not null" json:"name"`
	Color  string `gorm:"not null" json:"color"`

	// Relationships
	Goals []Goal `gorm:"foreignKey:CategoryID" json:"goals,omitempty"`
}
