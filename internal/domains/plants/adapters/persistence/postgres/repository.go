package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/m4rkovic/succulent-shop/internal/domains/plants/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/plants/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists plants in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type plantRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:plant_name"`
	Color       string    `gorm:"column:plant_color"`
	Description string    `gorm:"column:plant_desc"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (plantRecord) TableName() string { return "plants" }

func (r *Repository) Save(ctx context.Context, plant *domain.Plant) (*domain.Plant, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, errors.New("plant is nil")
	}
	record := plantRecord{
		ID:          plant.ID,
		Name:        plant.Name,
		Color:       plant.Color,
		Description: plant.Description,
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"plant_name":  record.Name,
				"plant_color": record.Color,
				"plant_desc":  record.Description,
				"updated_at":  gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Plant, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record plantRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Plant, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []plantRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	plants := make([]*domain.Plant, 0, len(records))
	for i := range records {
		plants = append(plants, records[i].toDomain())
	}
	return plants, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&plantRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres plant repository not configured")
	}
	return nil
}

func (r plantRecord) toDomain() *domain.Plant {
	return &domain.Plant{
		ID:          r.ID,
		Name:        r.Name,
		Color:       r.Color,
		Description: r.Description,
	}
}
