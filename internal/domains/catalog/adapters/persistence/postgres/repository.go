package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists products in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// productRecord flattens the tagged variant onto nullable columns. The
// variant is rebuilt from is_pot/tool_type when loading.
type productRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:product_name"`
	Description string    `gorm:"column:product_desc"`
	Price       float64   `gorm:"column:price"`
	ProductType string    `gorm:"column:product_type;type:varchar(32);index"`
	IsPot       bool      `gorm:"column:is_pot"`
	PotSize     string    `gorm:"column:pot_size;type:varchar(32)"`
	PotType     string    `gorm:"column:pot_type;type:varchar(32)"`
	PotNumber   int       `gorm:"column:pot_number"`
	ToolType    string    `gorm:"column:tool_type;type:varchar(32)"`
	PlantID     *int64    `gorm:"column:plant_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Save inserts or updates a product.
func (r *Repository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	record := toRecord(product)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"product_name": record.Name,
				"product_desc": record.Description,
				"price":        record.Price,
				"product_type": record.ProductType,
				"is_pot":       record.IsPot,
				"pot_size":     record.PotSize,
				"pot_type":     record.PotType,
				"pot_number":   record.PotNumber,
				"tool_type":    record.ToolType,
				"plant_id":     record.PlantID,
				"updated_at":   gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Delete removes a product by identifier.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&productRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns all products.
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	return products, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toRecord(product *domain.Product) productRecord {
	record := productRecord{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ProductType: string(product.Type),
		PlantID:     product.PlantID,
	}
	if product.Pot != nil {
		record.IsPot = true
		record.PotSize = string(product.Pot.Size)
		record.PotType = string(product.Pot.Type)
		record.PotNumber = product.Pot.Number
	}
	if product.Tool != nil {
		record.ToolType = string(product.Tool.Type)
	}
	return record
}

func (r productRecord) toDomain() *domain.Product {
	product := &domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Type:        domain.ProductType(r.ProductType),
		PlantID:     r.PlantID,
	}
	if r.IsPot {
		product.Pot = &domain.PotDetails{
			Size:   domain.PotSize(r.PotSize),
			Type:   domain.PotType(r.PotType),
			Number: r.PotNumber,
		}
	} else if r.ToolType != "" {
		product.Tool = &domain.ToolDetails{Type: domain.ToolType(r.ToolType)}
	}
	return product
}
