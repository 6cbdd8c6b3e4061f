package models

import "time"

// ConnectionDetail records one LPG service connection (SV) per consumer.
// ProductId references the ProductVariant delivered on that connection; it is
// patched in after variants are written because a variant may be created in
// the same import pass as the connection referencing it.
type ConnectionDetail struct {
	ID                  int        `gorm:"primary_key" json:"id"`
	SvNumber            string     `gorm:"size:50;uniqueIndex;not null" json:"sv_number" binding:"required"`
	ConsumerId          int        `gorm:"index;not null" json:"consumer_id" binding:"required"`
	SvDate              *time.Time `json:"sv_date"`
	ConnectionTypeId    int        `json:"connection_type_id"`
	ProductId           int        `gorm:"index" json:"product_id"`
	HistCodeDescription string     `gorm:"size:255" json:"hist_code_description"`
	NumOfRegulators     int        `gorm:"not null;default:1" json:"num_of_regulators"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
