package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sajidul-dev/adboard/backend/internal/models"
)

// PostgresStore keeps each collection as a single row with a JSONB payload,
// replaced wholesale on every write. The upsert is one statement, so readers
// see either the old array or the new one.
type PostgresStore struct {
	db *gorm.DB
}

type collectionRow struct {
	Name string `gorm:"primaryKey;size:64"`
	Docs []byte `gorm:"type:jsonb"`
}

func (collectionRow) TableName() string { return "collections" }

// NewPostgresStore connects via GORM and migrates the collections table.
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	log.Println("Successfully connected to PostgreSQL!")
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) ReadAll(ctx context.Context, collection string) ([]models.Document, error) {
	if err := Validate(collection); err != nil {
		return nil, err
	}
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Document{}, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	var docs []models.Document
	if err := json.Unmarshal(row.Docs, &docs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, collection, err)
	}
	return docs, nil
}

func (s *PostgresStore) WriteAll(ctx context.Context, collection string, docs []models.Document) error {
	if err := Validate(collection); err != nil {
		return err
	}
	if docs == nil {
		docs = []models.Document{}
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	row := collectionRow{Name: collection, Docs: data}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
