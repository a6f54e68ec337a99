package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:50;not null;unique" json:"username"`
	PasswordHash string `gorm:"column:password;size:200;not null" json:"-"`
	Email        string `gorm:"size:200;not null;unique" json:"email"`
	Role         string `gorm:"size:20;not null;default:'user'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "Users" }
