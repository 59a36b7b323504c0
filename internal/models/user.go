package models

// User represents a registered user of the application
type User struct {
	Base
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	Password         string `gorm:"not null" json:"-"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	IsActive         bool   `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string `json:"-"`

	// Relationships
	Balances []Balance `gorm:"foreignKey:UserID" json:"balances,omitempty"`
	Goals    []Goal    `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}
