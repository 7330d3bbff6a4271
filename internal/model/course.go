package model

import "time"

// Course is owned by exactly one User. Only the owner may change or remove it.
type Course struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	EstimatedTime   *string   `json:"estimatedTime" gorm:"size:255"`
	MaterialsNeeded *string   `json:"materialsNeeded" gorm:"type:text"`
	UserID          uint      `json:"userId" gorm:"not null;index"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	// Relations
	User User `json:"user" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// OwnedBy reports whether userID owns the course.
func (c *Course) OwnedBy(userID uint) bool {
	return c.UserID == userID
}
