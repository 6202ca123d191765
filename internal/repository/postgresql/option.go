package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/option"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/database"
)

type optionRepositoryImpl struct {
	db *database.DB
}

func NewOptionRepository(db *database.DB) option.OptionRepository {
	return &optionRepositoryImpl{db: db}
}

// Create implements option.OptionRepository.
func (r *optionRepositoryImpl) Create(ctx context.Context, opt option.Option) (option.Option, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO options (id, type, value)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, opt.ID, opt.Type, opt.Value).Scan(&opt.CreatedAt)
	if err != nil {
		return option.Option{}, fmt.Errorf("failed to create option: %w", err)
	}

	return opt, nil
}

// GetByID implements option.OptionRepository.
func (r *optionRepositoryImpl) GetByID(ctx context.Context, id string) (option.Option, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, type, value, created_at FROM options WHERE id = $1`

	var opt option.Option
	err := q.QueryRow(ctx, query, id).Scan(&opt.ID, &opt.Type, &opt.Value, &opt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return option.Option{}, option.ErrOptionNotFound
		}
		return option.Option{}, fmt.Errorf("failed to get option: %w", err)
	}

	return opt, nil
}

// GetByTypeAndValue implements option.OptionRepository.
func (r *optionRepositoryImpl) GetByTypeAndValue(ctx context.Context, optType option.Type, value string) (option.Option, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, type, value, created_at FROM options WHERE type = $1 AND value = $2`

	var opt option.Option
	err := q.QueryRow(ctx, query, optType, value).Scan(&opt.ID, &opt.Type, &opt.Value, &opt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return option.Option{}, option.ErrOptionNotFound
		}
		return option.Option{}, fmt.Errorf("failed to get option: %w", err)
	}

	return opt, nil
}

// List implements option.OptionRepository.
func (r *optionRepositoryImpl) List(ctx context.Context) ([]option.Option, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, type, value, created_at FROM options ORDER BY type ASC, value ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}
	defer rows.Close()

	var options []option.Option
	for rows.Next() {
		var opt option.Option
		if err := rows.Scan(&opt.ID, &opt.Type, &opt.Value, &opt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return options, nil
}

// ListValues implements option.OptionRepository.
func (r *optionRepositoryImpl) ListValues(ctx context.Context, optType option.Type) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT value FROM options WHERE type = $1 ORDER BY value ASC`

	rows, err := q.Query(ctx, query, optType)
	if err != nil {
		return nil, fmt.Errorf("failed to list option values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan option value: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read option values: %w", err)
	}

	return values, nil
}

// Update implements option.OptionRepository.
func (r *optionRepositoryImpl) Update(ctx context.Context, id string, value string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE options SET value = $1 WHERE id = $2`, value, id)
	if err != nil {
		return fmt.Errorf("failed to update option: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return option.ErrOptionNotFound
	}

	return nil
}

// Delete implements option.OptionRepository.
func (r *optionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete option: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return option.ErrOptionNotFound
	}

	return nil
}

// Upsert implements option.OptionRepository.
func (r *optionRepositoryImpl) Upsert(ctx context.Context, opt option.Option) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO options (id, type, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (type, value) DO NOTHING
	`

	_, err := q.Exec(ctx, query, opt.ID, opt.Type, opt.Value)
	if err != nil {
		return fmt.Errorf("failed to upsert option: %w", err)
	}

	return nil
}
