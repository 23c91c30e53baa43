package company

import (
	"context"

	"github.com/hairizuan-noorazman/jobly/internal/sqlutil"
)

// Store defines the interface for company persistence operations.
type Store interface {
	// Create inserts a company and refreshes it from the stored row.
	Create(ctx context.Context, c *Company) error

	// Get retrieves a company by handle together with its jobs.
	Get(ctx context.Context, handle string) (*Company, error)

	// FindAll lists companies ordered by name.
	FindAll(ctx context.Context, filter Filter) ([]*Company, error)

	// Update applies the given setters as a partial update.
	Update(ctx context.Context, handle string, setters ...UpdateSetter) (*Company, error)

	// Remove deletes a company and, through the foreign key, its jobs.
	Remove(ctx context.Context, handle string) error
}

// UpdateSetter records one column change for a partial update.
type UpdateSetter func(*sqlutil.Data) error

// columns maps update field names to companies columns.
var columns = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}
