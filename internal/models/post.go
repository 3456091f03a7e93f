package models

import "time"

// Post is authored content published by a Profile under a Category.
type Post struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AuthorID        uint      `gorm:"not null;index" json:"author_id"`
	Author          Profile   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	CategoryID      uint      `gorm:"not null;index" json:"category_id"`
	Category        Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category"`
	Title           string    `gorm:"size:50;not null" json:"title"`
	PublicationDate time.Time `json:"publication_date"`
	ImageURL        string    `gorm:"size:100" json:"image_url"`
	Content         string    `gorm:"size:100;not null" json:"content"`
	Approved        bool      `json:"approved"`
	Tags            []Tag     `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Comments        []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// PostTag is the junction row associating one Tag with one Post. The
// composite primary key keeps the pair unique; rows go away with either
// parent.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}
