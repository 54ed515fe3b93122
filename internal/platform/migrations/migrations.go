package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&productRecord{},
		&plantRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID         int64         `gorm:"primaryKey;column:id"`
	UserID     int64         `gorm:"column:user_id;index:idx_orders_user"`
	ProductIDs pq.Int64Array `gorm:"column:product_ids;type:bigint[]"`
	Reference  string        `gorm:"column:reference;type:varchar(64);uniqueIndex"`
	Status     string        `gorm:"column:status;type:varchar(32);index"`
	CreatedAt  time.Time     `gorm:"column:created_at"`
	UpdatedAt  time.Time     `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Product schema mirrors the catalog Postgres adapter. The pot/tool variant
// flattens onto nullable columns guarded by is_pot.
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

// Plant schema mirrors the plants Postgres adapter.
type plantRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:plant_name"`
	Color       string    `gorm:"column:plant_color"`
	Description string    `gorm:"column:plant_desc"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (plantRecord) TableName() string { return "plants" }
