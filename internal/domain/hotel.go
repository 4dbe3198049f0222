package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Stars     int       `json:"stars" validate:"gte=0,lte=5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
