package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date  Date      `gorm:"column:data;type:DATE;not null" json:"date"`
	Time  TimeOfDay `gorm:"column:ora;type:TIME;not null" json:"time"`
	Notes *string   `gorm:"column:observatii;type:TEXT" json:"notes"`

	ClientLastName  *string `gorm:"column:nume_client;size:100" json:"client_last_name"`
	ClientFirstName *string `gorm:"column:prenume_client;size:100" json:"client_first_name"`
	ClientEmail     *string `gorm:"column:email_client;size:200" json:"client_email"`
	ClientPhone     *string `gorm:"column:telefon_client;size:50" json:"client_phone"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	// JobID mirrors the job of ServiceID whenever a service is set.
	JobID     *uint `gorm:"column:job_id" json:"job_id"`
	PersonID  *uint `gorm:"column:persoana_id" json:"person_id"`
	ServiceID *uint `gorm:"column:serviciu_id" json:"service_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string { return "Programari" }
