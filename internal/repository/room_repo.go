package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Type         string    `gorm:"column:type"`
	Number       int       `gorm:"column:number"`
	Description  string    `gorm:"column:description"`
	NumberOfBeds int       `gorm:"column:number_of_beds"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:           m.ID,
		Type:         domain.RoomType(m.Type),
		Number:       m.Number,
		Description:  m.Description,
		NumberOfBeds: m.NumberOfBeds,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:           r.ID,
		Type:         string(r.Type),
		Number:       r.Number,
		Description:  r.Description,
		NumberOfBeds: r.NumberOfBeds,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
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

func (r *RoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	var rows []roomModel
	tx := r.db.WithContext(ctx).Order("number ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

// GetAvailable returns rooms with no approved booking overlapping
// [arrival, departure).
func (r *RoomRepository) GetAvailable(ctx context.Context, arrival, departure time.Time) ([]domain.Room, error) {
	var rows []roomModel
	q := `
SELECT rooms.*
FROM rooms
WHERE rooms.id NOT IN (
    SELECT room_id FROM bookings
    WHERE is_approved = ?
      AND arrival_date < ?
      AND departure_date > ?
)
ORDER BY rooms.number ASC
`
	tx := r.db.WithContext(ctx).Raw(q, true, departure, arrival).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&roomModel{}, id).Error
}

func (r *RoomRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Room, error) {
	out := make(map[int64]*domain.Room, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []roomModel
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	for _, m := range rows {
		out[m.ID] = toDomainRoom(m)
	}
	return out, nil
}
