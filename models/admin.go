package models

import "time"

// Admin accounts are created by SeedDatabase (or out-of-band) and are never
// mutated or deleted through the API.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:150" json:"username"`
	Password  string    `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role      string    `gorm:"size:50;default:admin" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
