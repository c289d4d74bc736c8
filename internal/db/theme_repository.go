package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucidstyle/shade/internal/color"
	"github.com/lucidstyle/shade/internal/models"
)

// Theme repository errors.
var (
	ErrThemeNotFound = errors.New("theme not found")
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrThemeExists   = errors.New("theme already exists")
)

// ThemeRepository handles theme record persistence.
type ThemeRepository struct {
	db *DB
}

// NewThemeRepository creates a new ThemeRepository.
func NewThemeRepository(db *DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// Create inserts a new theme record. Seed literals are validated up front
// so a malformed color fails loudly at save time, not at render time.
func (r *ThemeRepository) Create(ctx context.Context, record *models.ThemeRecord) error {
	if record.Name == "" || record.Background == "" {
		return ErrInvalidTheme
	}
	if _, err := color.Parse(record.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if record.Anchor != "" {
		if _, err := color.Parse(record.Anchor); err != nil {
			return fmt.Errorf("anchor: %w", err)
		}
	}

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO themes (id, name, background, anchor, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		record.ID,
		record.Name,
		record.Background,
		nullString(record.Anchor),
		record.CreatedAt.Format(time.RFC3339),
		record.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrThemeExists, record.Name)
		}
		return fmt.Errorf("failed to insert theme: %w", err)
	}

	return nil
}

// Get retrieves a theme record by ID.
func (r *ThemeRepository) Get(ctx context.Context, id string) (*models.ThemeRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, background, anchor, created_at, updated_at
		FROM themes WHERE id = ?
	`, id)

	return r.scanTheme(row)
}

// GetByName retrieves a theme record by its unique name.
func (r *ThemeRepository) GetByName(ctx context.Context, name string) (*models.ThemeRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, background, anchor, created_at, updated_at
		FROM themes WHERE name = ?
	`, name)

	return r.scanTheme(row)
}

// List returns all theme records ordered by name.
func (r *ThemeRepository) List(ctx context.Context) ([]*models.ThemeRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, background, anchor, created_at, updated_at
		FROM themes ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	defer rows.Close()

	var records []*models.ThemeRecord
	for rows.Next() {
		record, err := r.scanTheme(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate themes: %w", err)
	}

	return records, nil
}

// Delete removes a theme record by name.
func (r *ThemeRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM themes WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ThemeRepository) scanTheme(row rowScanner) (*models.ThemeRecord, error) {
	var record models.ThemeRecord
	var anchor sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&record.ID, &record.Name, &record.Background, &anchor, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrThemeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan theme: %w", err)
	}

	if anchor.Valid {
		record.Anchor = anchor.String
	}
	if record.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if record.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &record, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	// modernc.org/sqlite reports constraint failures in the error text.
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
