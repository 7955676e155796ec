package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// BlogPost slugs are derived from the title and recomputed on every title
// change. The unique index on slug is the durable guard; service-level
// pre-checks only exist for friendlier error messages.
type BlogPost struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"size:255" json:"title"`
	Slug          string         `gorm:"uniqueIndex;size:255" json:"slug"`
	Content       string         `gorm:"type:longtext" json:"content"`
	Excerpt       string         `gorm:"type:text" json:"excerpt,omitempty"`
	Status        string         `gorm:"size:20;index;default:draft" json:"status"`
	FeaturedImage string         `gorm:"size:512" json:"featuredImage,omitempty"`
	Tags          datatypes.JSON `gorm:"column:tags" json:"tags,omitempty"`
	Author        string         `gorm:"size:150" json:"author"`
	CreatedAt     time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
