package models

// Tag is a free-standing label attached to posts through the post_tags
// junction table.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"size:50;not null" json:"label"`
}
