package models

import "time"

// Job is a trade such as "Electrician".
type Job struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nume;size:100;not null;unique" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Job) TableName() string { return "Job" }
