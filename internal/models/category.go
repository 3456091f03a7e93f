package models

// Category groups posts under a label.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"size:50;not null" json:"label"`
}
