package models

import "time"

// Customer represents a person who rents movies.
type Customer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null" validate:"required,min=5,max=255"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;type:varchar(15);not null" validate:"required,min=8,max=15"`
	IsGold    bool      `json:"isGold" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerSnapshot is the part of a customer copied into a rental.
type CustomerSnapshot struct {
	ID    string `json:"id" gorm:"type:varchar(36);index:idx_rentals_customer_movie,priority:1"`
	Name  string `json:"name" gorm:"type:varchar(255)"`
	Phone string `json:"phone" gorm:"type:varchar(15)"`
}

// Snapshot captures the fields a rental keeps about its customer.
func (c Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{ID: c.ID, Name: c.Name, Phone: c.Phone}
}
