package job

import (
	"context"
	"fmt"

	"github.com/hairizuan-noorazman/jobly/company"
	"github.com/hairizuan-noorazman/jobly/database"
	"github.com/hairizuan-noorazman/jobly/internal/sqlutil"
	"github.com/hairizuan-noorazman/jobly/logger"
	"gorm.io/gorm"
)

const jobColumns = `id, title, salary, equity, company_handle`

// PostgresStore implements the Store interface with parameterized SQL run through GORM.
type PostgresStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewPostgresStore creates a new PostgreSQL-backed job store.
func NewPostgresStore(db *gorm.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log,
	}
}

// Create inserts a new job.
func (s *PostgresStore) Create(ctx context.Context, j *Job) error {
	if err := j.Validate(); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO jobs (title, salary, equity, company_handle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+jobColumns,
		j.Title, j.Salary, j.Equity, j.CompanyHandle,
	).Scan(j).Error
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrCompanyNotFound
		}
		s.logger.Error(ctx, "failed to create job", map[string]interface{}{
			"error":          err.Error(),
			"company_handle": j.CompanyHandle,
		})
		return err
	}

	s.logger.Info(ctx, "job created", map[string]interface{}{
		"job_id":         j.ID,
		"company_handle": j.CompanyHandle,
	})

	return nil
}

// FindAll lists every job.
func (s *PostgresStore) FindAll(ctx context.Context) ([]*Job, error) {
	return s.list(ctx, "find all",
		`SELECT `+jobColumns+`
		 FROM jobs
		 ORDER BY title`)
}

// FindByTitle lists jobs whose title contains title.
func (s *PostgresStore) FindByTitle(ctx context.Context, title string) ([]*Job, error) {
	return s.list(ctx, "find by title",
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE LOWER(title) LIKE LOWER($1)
		 ORDER BY title`, likePattern(title))
}

// FindBySalary lists jobs paying at least minSalary.
func (s *PostgresStore) FindBySalary(ctx context.Context, minSalary int) ([]*Job, error) {
	return s.list(ctx, "find by salary",
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE salary >= $1
		 ORDER BY title`, minSalary)
}

// FindByEquity lists jobs with non-zero equity.
func (s *PostgresStore) FindByEquity(ctx context.Context) ([]*Job, error) {
	return s.list(ctx, "find by equity",
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE equity > 0
		 ORDER BY title`)
}

// FindByEquityAndSalary lists jobs with equity paying at least minSalary.
func (s *PostgresStore) FindByEquityAndSalary(ctx context.Context, minSalary int) ([]*Job, error) {
	return s.list(ctx, "find by equity and salary",
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE equity > 0
		 AND salary >= $1
		 ORDER BY title`, minSalary)
}

// FindByTitleAndSalary lists jobs matching title paying at least minSalary.
func (s *PostgresStore) FindByTitleAndSalary(ctx context.Context, title string, minSalary int) ([]*Job, error) {
	return s.list(ctx, "find by title and salary",
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE LOWER(title) LIKE LOWER($1)
		 AND salary >= $2
		 ORDER BY title`, likePattern(title), minSalary)
}

// FindByTitleAndEquity lists jobs with equity matching title.
func (s *PostgresStore) FindByTitleAndEquity(ctx context.Context, title string) ([]*Job, error) {
	return s.list(ctx, "find by title and equity",
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE equity > 0
		 AND LOWER(title) LIKE LOWER($1)
		 ORDER BY title`, likePattern(title))
}

// FindByAll lists jobs with equity matching title paying at least minSalary.
func (s *PostgresStore) FindByAll(ctx context.Context, title string, minSalary int) ([]*Job, error) {
	return s.list(ctx, "find by all",
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE equity > 0
		 AND LOWER(title) LIKE LOWER($1)
		 AND salary >= $2
		 ORDER BY title`, likePattern(title), minSalary)
}

// Find dispatches the filter to the fixed-shape search covering exactly its
// populated criteria.
func (s *PostgresStore) Find(ctx context.Context, f Filter) ([]*Job, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	hasTitle := f.Title != ""
	hasSalary := f.MinSalary != nil

	switch {
	case hasTitle && hasSalary && f.HasEquity:
		return s.FindByAll(ctx, f.Title, *f.MinSalary)
	case hasTitle && hasSalary:
		return s.FindByTitleAndSalary(ctx, f.Title, *f.MinSalary)
	case hasTitle && f.HasEquity:
		return s.FindByTitleAndEquity(ctx, f.Title)
	case hasSalary && f.HasEquity:
		return s.FindByEquityAndSalary(ctx, *f.MinSalary)
	case hasTitle:
		return s.FindByTitle(ctx, f.Title)
	case hasSalary:
		return s.FindBySalary(ctx, *f.MinSalary)
	case f.HasEquity:
		return s.FindByEquity(ctx)
	default:
		return s.FindAll(ctx)
	}
}

// Get retrieves a job by id and then the company that offers it.
func (s *PostgresStore) Get(ctx context.Context, id int) (*Detail, error) {
	var j Job
	tx := s.db.WithContext(ctx).Raw(
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE id = $1`, id,
	).Scan(&j)
	if tx.Error != nil {
		s.logger.Error(ctx, "failed to get job", map[string]interface{}{
			"error":  tx.Error.Error(),
			"job_id": id,
		})
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}

	var c company.Company
	tx = s.db.WithContext(ctx).Raw(
		`SELECT handle, name, description, num_employees, logo_url
		 FROM companies
		 WHERE handle = $1`, j.CompanyHandle,
	).Scan(&c)
	if tx.Error != nil {
		s.logger.Error(ctx, "failed to get job company", map[string]interface{}{
			"error":          tx.Error.Error(),
			"job_id":         id,
			"company_handle": j.CompanyHandle,
		})
		return nil, tx.Error
	}

	detail := &Detail{
		ID:     j.ID,
		Title:  j.Title,
		Salary: j.Salary,
		Equity: j.Equity,
	}
	if tx.RowsAffected > 0 {
		detail.Company = &c
	}

	return detail, nil
}

// Update applies a partial update to the job.
func (s *PostgresStore) Update(ctx context.Context, id int, setters ...UpdateSetter) (*Job, error) {
	var data sqlutil.Data
	for _, setter := range setters {
		if err := setter(&data); err != nil {
			return nil, err
		}
	}

	set, err := sqlutil.PartialUpdate(data, columns)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`UPDATE jobs
		SET %s
		WHERE id = %s
		RETURNING %s`, set.Columns, set.NextPlaceholder(), jobColumns)

	var j Job
	tx := s.db.WithContext(ctx).Raw(query, append(set.Values, id)...).Scan(&j)
	if tx.Error != nil {
		if database.IsForeignKeyViolation(tx.Error) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error(ctx, "failed to update job", map[string]interface{}{
			"error":  tx.Error.Error(),
			"job_id": id,
			"fields": data.Fields(),
		})
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}

	s.logger.Info(ctx, "job updated", map[string]interface{}{
		"job_id": id,
		"fields": data.Fields(),
	})

	return &j, nil
}

// Remove deletes a job by id.
func (s *PostgresStore) Remove(ctx context.Context, id int) error {
	var deleted int
	tx := s.db.WithContext(ctx).Raw(
		`DELETE FROM jobs
		 WHERE id = $1
		 RETURNING id`, id,
	).Scan(&deleted)
	if tx.Error != nil {
		s.logger.Error(ctx, "failed to delete job", map[string]interface{}{
			"error":  tx.Error.Error(),
			"job_id": id,
		})
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrJobNotFound
	}

	s.logger.Info(ctx, "job deleted", map[string]interface{}{
		"job_id": id,
	})

	return nil
}

// list runs a search query and logs failures under op.
func (s *PostgresStore) list(ctx context.Context, op string, query string, args ...interface{}) ([]*Job, error) {
	jobs := make([]*Job, 0)
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&jobs).Error; err != nil {
		s.logger.Error(ctx, "failed to "+op+" jobs", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return jobs, nil
}

func likePattern(title string) string {
	return "%" + title + "%"
}
