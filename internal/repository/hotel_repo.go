package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	City      string    `gorm:"column:city;index"`
	Address   string    `gorm:"column:address"`
	Stars     int       `gorm:"column:stars"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

func toDomainHotel(m hotelModel) *domain.Hotel {
	return &domain.Hotel{
		ID:        m.ID,
		Name:      m.Name,
		City:      m.City,
		Address:   m.Address,
		Stars:     m.Stars,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := hotelModel{
		ID:      h.ID,
		Name:    h.Name,
		City:    h.City,
		Address: h.Address,
		Stars:   h.Stars,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*h = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) List(ctx context.Context, limit, offset int) ([]domain.Hotel, error) {
	var ms []hotelModel
	tx := r.db.WithContext(ctx).
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}
