package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name" binding:"required"`
	Description string    `gorm:"size:255" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Unit struct {
	ID          int       `gorm:"primary_key" json:"id"`
	ShortName   string    `gorm:"size:10;uniqueIndex;not null" json:"short_name" binding:"required"`
	Description string    `gorm:"size:100" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProductVariant is created lazily the first time a product code is seen
// during an import.
type ProductVariant struct {
	ID          int             `gorm:"primary_key" json:"id"`
	ProductCode string          `gorm:"size:50;uniqueIndex;not null" json:"product_code" binding:"required"`
	Name        string          `gorm:"size:255;not null" json:"name" binding:"required"`
	ProductId   int             `gorm:"index;not null" json:"product_id" binding:"required"`
	UnitId      int             `gorm:"not null" json:"unit_id" binding:"required"`
	Size        decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"size"`
	VariantType VariantType     `gorm:"type:enum('DOMESTIC','COMMERCIAL','INDUSTRIAL');not null" json:"variant_type"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
