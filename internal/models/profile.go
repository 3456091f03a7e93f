package models

import "time"

// Profile extends a User with publishing attributes. It is created alongside
// the User at signup and removed with it (cascade).
type Profile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Bio             string    `gorm:"size:50" json:"bio"`
	ProfileImageURL string    `gorm:"size:100" json:"profile_image_url"`
	CreatedOn       time.Time `json:"created_on"`
	Active          bool      `json:"active"`
}
