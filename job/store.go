package job

import (
	"context"

	"github.com/hairizuan-noorazman/jobly/internal/sqlutil"
)

// Store defines the interface for job persistence operations. Every list is
// ordered by title.
type Store interface {
	// Create inserts a job and refreshes it from the stored row.
	Create(ctx context.Context, job *Job) error

	// FindAll lists every job.
	FindAll(ctx context.Context) ([]*Job, error)

	// FindByTitle lists jobs whose title contains title, ignoring case.
	FindByTitle(ctx context.Context, title string) ([]*Job, error)

	// FindBySalary lists jobs paying at least minSalary.
	FindBySalary(ctx context.Context, minSalary int) ([]*Job, error)

	// FindByEquity lists jobs with non-zero equity.
	FindByEquity(ctx context.Context) ([]*Job, error)

	// FindByEquityAndSalary lists jobs with equity paying at least minSalary.
	FindByEquityAndSalary(ctx context.Context, minSalary int) ([]*Job, error)

	// FindByTitleAndSalary lists jobs matching title paying at least minSalary.
	FindByTitleAndSalary(ctx context.Context, title string, minSalary int) ([]*Job, error)

	// FindByTitleAndEquity lists jobs with equity matching title.
	FindByTitleAndEquity(ctx context.Context, title string) ([]*Job, error)

	// FindByAll lists jobs with equity matching title paying at least minSalary.
	FindByAll(ctx context.Context, title string, minSalary int) ([]*Job, error)

	// Find runs the search that matches the filter's populated criteria.
	Find(ctx context.Context, filter Filter) ([]*Job, error)

	// Get retrieves a job with its company.
	Get(ctx context.Context, id int) (*Detail, error)

	// Update applies the given setters as a partial update.
	Update(ctx context.Context, id int, setters ...UpdateSetter) (*Job, error)

	// Remove deletes a job.
	Remove(ctx context.Context, id int) error
}

// UpdateSetter records one column change for a partial update.
type UpdateSetter func(*sqlutil.Data) error

// columns maps update field names to jobs columns.
var columns = map[string]string{
	"companyHandle": "company_handle",
}
