package repository

import "time"

type User struct {
	Username     string     `gorm:"primaryKey;size:20"`
	PasswordHash string     `gorm:"not null"`
	Email        string     `gorm:"size:50;not null"`
	FirstName    string     `gorm:"size:30;not null"`
	LastName     string     `gorm:"size:30;not null"`
	Feedbacks    []Feedback `gorm:"foreignKey:OwnerUsername;references:Username;constraint:OnDelete:CASCADE"`
	Sessions     []Session  `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE"`
}

type Feedback struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Title         string `gorm:"size:100;not null"`
	Content       string `gorm:"type:text;not null"`
	OwnerUsername string `gorm:"size:20;not null;index"`
}

type Session struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Username  string    `gorm:"size:20;not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}
