package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID                int64           `gorm:"column:id;primaryKey"`
	HotelID           int64           `gorm:"column:hotel_id;index"`
	RoomNumber        string          `gorm:"column:room_number"`
	RoomType          string          `gorm:"column:room_type"`
	CapacityAdults    int             `gorm:"column:capacity_adults"`
	CapacityChildren  int             `gorm:"column:capacity_children"`
	PricePerNight     decimal.Decimal `gorm:"column:price_per_night;type:numeric(12,2)"`
	IsAvailable       bool            `gorm:"column:is_available"`
	OperationalStatus string          `gorm:"column:operational_status"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:                m.ID,
		HotelID:           m.HotelID,
		RoomNumber:        m.RoomNumber,
		RoomType:          domain.RoomType(m.RoomType),
		Capacity:          domain.RoomCapacity{Adults: m.CapacityAdults, Children: m.CapacityChildren},
		PricePerNight:     m.PricePerNight,
		IsAvailable:       m.IsAvailable,
		OperationalStatus: domain.OperationalStatus(m.OperationalStatus),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:                r.ID,
		HotelID:           r.HotelID,
		RoomNumber:        r.RoomNumber,
		RoomType:          string(r.RoomType),
		CapacityAdults:    r.Capacity.Adults,
		CapacityChildren:  r.Capacity.Children,
		PricePerNight:     r.PricePerNight,
		IsAvailable:       r.IsAvailable,
		OperationalStatus: string(r.OperationalStatus),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("room_number").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) SetAvailability(ctx context.Context, id int64, available bool) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("id = ?", id).
		Update("is_available", available)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *RoomRepository) SetOperationalStatus(ctx context.Context, id int64, status domain.OperationalStatus) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&roomModel{}).
		Where("id = ?", id).
		Update("operational_status", string(status))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
