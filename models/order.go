package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusServed    OrderStatus = "Served"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusServed, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	OrderDate   time.Time   `gorm:"not null" json:"order_date"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CustomerID  uint        `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer,omitempty"`
}
