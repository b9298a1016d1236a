package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is one uploaded document record pointing to a blob in object storage.
// At most one file per user; the unique index is the hard guarantee, the
// handlers additionally check before creating to return a friendly message.
type File struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"uniqueIndex" json:"user_id"`
	CategoryID  string    `json:"category_id"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Category is managed by a separate router; this service only reads it
// as a joined attribute of File.
type Category struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}
