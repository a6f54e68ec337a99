package models

// Service is a bookable offering, optionally tied to one job.
type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"column:descriere;size:255;not null" json:"description"`
	JobID       *uint  `gorm:"column:job_id" json:"job_id"`
}

func (Service) TableName() string { return "Servicii" }
