package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Project represents a public-facing portfolio entry.
type Project struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Technologies []string       `gorm:"serializer:json;not null" json:"technologies"`
	ImageURL     string         `gorm:"not null" json:"imageUrl"`
	DemoURL      string         `json:"demoUrl,omitempty"`
	RepoURL      string         `json:"repoUrl,omitempty"`
	Featured     bool           `gorm:"default:false" json:"featured"`
	Order        int            `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Validate checks the required-field invariants before a write.
func (p *Project) Validate() error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return NewValidationError("Project title is required")
	}
	if p.Description == "" {
		return NewValidationError("Project description is required")
	}
	if len(p.Technologies) == 0 {
		return NewValidationError("Technologies are required")
	}
	if p.ImageURL == "" {
		return NewValidationError("Project image is required")
	}
	return nil
}
