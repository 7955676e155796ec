package models

import "time"

// ContactSubmission rows are written by the public contact form and are
// immutable afterwards; the only mutation an admin can perform is deletion.
type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255;index" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	Company   string    `gorm:"size:255" json:"company,omitempty"`
	Service   string    `gorm:"size:100" json:"service,omitempty"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
