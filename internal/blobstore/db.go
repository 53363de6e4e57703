package blobstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/simgeozgundondu/product-management-app/pkg/db"
	"github.com/simgeozgundondu/product-management-app/pkg/db/models"
)

// DB persists blobs in a single key-value table through GORM. A browser's
// local storage is itself a sqlite-backed KV store, so the sqlite driver is
// the default; postgres works with the same table.
type DB struct {
	client *db.Client
}

// NewDB wraps an established database client.
func NewDB(client *db.Client) (*DB, error) {
	if client == nil {
		return nil, errors.New("db client is required")
	}
	return &DB{client: client}, nil
}

// Load fetches the serialized collection stored under key.
func (d *DB) Load(ctx context.Context, key string) ([]byte, error) {
	var row models.CatalogBlob
	err := d.client.DB().WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db load: %w", err)
	}
	return []byte(row.Value), nil
}

// Save upserts the serialized collection stored under key.
func (d *DB) Save(ctx context.Context, key string, blob []byte) error {
	row := models.CatalogBlob{Key: key, Value: string(blob)}
	err := d.client.DB().WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("db save: %w", err)
	}
	return nil
}

// Ping verifies the datasource is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx)
}
