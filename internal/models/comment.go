package models

import "time"

// Comment belongs to exactly one Post and one authoring Profile.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    Profile   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Content   string    `gorm:"size:500;not null" json:"content"`
	CreatedOn time.Time `json:"created_on"`
}
