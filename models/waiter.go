package models

type Waiter struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	FirstName         string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName          string `gorm:"type:varchar(100);not null" json:"last_name"`
	Shift             string `gorm:"type:varchar(50);not null" json:"shift"`
	YearsOfExperience int    `gorm:"not null;default:0" json:"years_of_experience"`
}
