package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/tranngoc769/QTKit/internal/timestamp"
	"github.com/tranngoc769/QTKit/internal/util"
)

type Repository struct {
	db *bun.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	ctx := context.Background()

	// Create tables
	models := []interface{}{
		(*ConversionRecord)(nil),
	}

	for _, model := range models {
		if _, err := r.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	// Create indexes
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_conversion_detected_at ON conversion_records(detected_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_conversion_hash ON conversion_records(hash)",
		"CREATE INDEX IF NOT EXISTS idx_conversion_unit ON conversion_records(unit)",
	}

	for _, idx := range indexes {
		if _, err := r.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SaveConversion persists a detection result. Re-detecting an input that
// is already stored bumps it to the top instead of inserting a duplicate.
func (r *Repository) SaveConversion(ctx context.Context, result timestamp.Result) (*ConversionRecord, error) {
	record := &ConversionRecord{
		Input:     result.Input,
		Unit:      string(result.Unit),
		GMT:       result.GMT,
		Local:     result.Local,
		ZoneLabel: result.ZoneLabel,
		Hash:      util.GenerateHash(result.Input),
	}

	exists, err := r.db.NewSelect().
		Model((*ConversionRecord)(nil)).
		Where("hash = ?", record.Hash).
		Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing record: %w", err)
	}

	now := time.Now()

	if exists {
		_, err = r.db.NewUpdate().
			Model((*ConversionRecord)(nil)).
			Set("detected_at = ?", now).
			Set("gmt = ?", record.GMT).
			Set("local = ?", record.Local).
			Set("zone_label = ?", record.ZoneLabel).
			Set("updated_at = ?", now).
			Where("hash = ?", record.Hash).
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update existing record: %w", err)
		}
		return r.GetByHash(ctx, record.Hash)
	}

	record.DetectedAt = now
	record.CreatedAt = now
	record.UpdatedAt = now

	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert conversion record: %w", err)
	}

	return record, nil
}

func (r *Repository) GetRecentConversions(ctx context.Context, limit int) ([]*ConversionRecord, error) {
	var records []*ConversionRecord

	err := r.db.NewSelect().
		Model(&records).
		Order("detected_at DESC").
		Limit(limit).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get recent conversions: %w", err)
	}

	return records, nil
}

func (r *Repository) SearchConversions(ctx context.Context, query string, limit int) ([]*ConversionRecord, error) {
	var records []*ConversionRecord

	pattern := "%" + query + "%"
	err := r.db.NewSelect().
		Model(&records).
		Where("input LIKE ? OR gmt LIKE ? OR local LIKE ?", pattern, pattern, pattern).
		Order("detected_at DESC").
		Limit(limit).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to search conversions: %w", err)
	}

	return records, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*ConversionRecord, error) {
	var record ConversionRecord
	err := r.db.NewSelect().
		Model(&record).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get record by ID: %w", err)
	}

	return &record, nil
}

func (r *Repository) GetByHash(ctx context.Context, hash string) (*ConversionRecord, error) {
	var record ConversionRecord
	err := r.db.NewSelect().
		Model(&record).
		Where("hash = ?", hash).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get record by hash: %w", err)
	}

	return &record, nil
}

func (r *Repository) DeleteConversion(ctx context.Context, id int64) error {
	_, err := r.db.NewDelete().
		Model((*ConversionRecord)(nil)).
		Where("id = ?", id).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}

func (r *Repository) CleanupOldRecords(ctx context.Context, maxDays int, maxItems int) error {
	cutoffDate := time.Now().AddDate(0, 0, -maxDays)

	// Delete records past the retention window
	_, err := r.db.NewDelete().
		Model((*ConversionRecord)(nil)).
		Where("detected_at < ?", cutoffDate).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete old records: %w", err)
	}

	// Keep only the most recent records
	subquery := r.db.NewSelect().
		Model((*ConversionRecord)(nil)).
		Column("id").
		Order("detected_at DESC").
		Limit(maxItems)

	_, err = r.db.NewDelete().
		Model((*ConversionRecord)(nil)).
		Where("id NOT IN (?)", subquery).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to cleanup excess records: %w", err)
	}

	return nil
}

func (r *Repository) ClearAllRecords(ctx context.Context) error {
	_, err := r.db.NewDelete().Model((*ConversionRecord)(nil)).Where("1=1").Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear all records: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
