package models

import "time"

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ReservationDate time.Time `gorm:"not null" json:"reservation_date"`
	ReservationTime string    `gorm:"type:varchar(8);not null" json:"reservation_time"`
	NumberOfPeople  int       `gorm:"not null" json:"number_of_people"`
	Notes           string    `gorm:"type:varchar(1000)" json:"notes"`
	CustomerID      uint      `gorm:"not null;index" json:"customer_id"`
	Customer        *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer,omitempty"`
}
