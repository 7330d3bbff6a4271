package model

import "time"

// User is a course author. Users are created through the API and never updated or deleted.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"firstName" gorm:"size:255;not null"`
	LastName     string    `json:"lastName" gorm:"size:255;not null"`
	EmailAddress string    `json:"emailAddress" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Relations
	Courses []Course `json:"-" gorm:"foreignKey:UserID"`
}
