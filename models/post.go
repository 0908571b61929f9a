package models

import (
	"time"
)

// DefaultImage is the shared placeholder assigned to posts created without an
// upload. The file itself is never deleted.
const DefaultImage = "default.jpg"

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id"`
	User      *User     `json:"user,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	ImageFile string    `json:"image_file" gorm:"size:120;default:'default.jpg'"`
	CreatedAt time.Time `json:"created_at"`
}

type PostForm struct {
	Title   string `form:"title" binding:"required,min=2,max=100"`
	Content string `form:"content" binding:"required"`
}
