package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage represents an inbound message submitted through the
// public contact form.
type ContactMessage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"not null" json:"email"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Read      bool           `gorm:"default:false" json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Validate checks the three required input fields.
func (m *ContactMessage) Validate() error {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return NewValidationError("Name, email, and message are required")
	}
	return nil
}
