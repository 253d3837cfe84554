package models

import "strings"

type Customer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(150);not null" json:"email"`
	Phone     string `gorm:"type:varchar(20);not null" json:"phone"`
}

// FullName joins first and last name for display purposes.
func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
