package models

import "time"

// Person can be qualified for several jobs through PersonJob. JobID is the
// legacy single-job column and is kept for existing rows.
type Person struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	LastName  string `gorm:"column:nume;size:100;not null" json:"last_name"`
	FirstName string `gorm:"column:prenume;size:100;not null" json:"first_name"`
	JobID     *uint  `gorm:"column:job_id" json:"job_id"`
}

func (Person) TableName() string { return "Persoane" }

// PersonJob grants a qualification. The (person, job) pair is unique.
type PersonJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JobID     uint      `gorm:"column:job_id;not null" json:"job_id"`
	PersonID  uint      `gorm:"column:persoana_id;not null" json:"person_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PersonJob) TableName() string { return "PersoanaJob" }
