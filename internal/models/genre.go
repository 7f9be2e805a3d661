package models

import "time"

// Genre represents a movie category.
type Genre struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(50);not null" validate:"required,min=3,max=50"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GenreSnapshot is the copy of a genre embedded in a movie at write time.
type GenreSnapshot struct {
	ID   string `json:"id" gorm:"type:varchar(36)"`
	Name string `json:"name" gorm:"type:varchar(50)"`
}

// Snapshot captures the genre's current id and name.
func (g Genre) Snapshot() GenreSnapshot {
	return GenreSnapshot{ID: g.ID, Name: g.Name}
}
