package models

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	CreatedAt   time.Time `json:"createdAt"`
}
