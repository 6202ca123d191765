package option

import (
	"context"
)

// OptionRepository defines data access methods for dropdown vocabularies.
type OptionRepository interface {
	// Create inserts a new option value
	Create(ctx context.Context, opt Option) (Option, error)

	// GetByID retrieves an option by ID
	GetByID(ctx context.Context, id string) (Option, error)

	// GetByTypeAndValue retrieves an option by its natural key
	GetByTypeAndValue(ctx context.Context, optType Type, value string) (Option, error)

	// List retrieves all options ordered by type then value
	List(ctx context.Context) ([]Option, error)

	// ListValues retrieves the values of one vocabulary, sorted
	ListValues(ctx context.Context, optType Type) ([]string, error)

	// Update renames an option value
	Update(ctx context.Context, id string, value string) error

	// Delete removes an option value
	Delete(ctx context.Context, id string) error

	// Upsert inserts the option if its (type, value) pair is absent.
	// Used by startup seeding; idempotent.
	Upsert(ctx context.Context, opt Option) error
}

// OptionService defines vocabulary management operations
type OptionService interface {
	List(ctx context.Context) ([]OptionResponse, error)
	Create(ctx context.Context, req CreateOptionRequest) (OptionResponse, error)
	Update(ctx context.Context, req UpdateOptionRequest) (OptionResponse, error)
	Delete(ctx context.Context, id string) error
	// SeedDefaults installs the built-in vocabulary values once
	SeedDefaults(ctx context.Context) error
}
