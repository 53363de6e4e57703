package models

import "time"

// CatalogBlob is the single-table key-value row holding a serialized collection.
// The value is the whole JSON array; every write replaces it wholesale.
type CatalogBlob struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table created by the migrations.
func (CatalogBlob) TableName() string {
	return "catalog_blobs"
}
