package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/hairizuan-noorazman/jobly/database"
	"github.com/hairizuan-noorazman/jobly/internal/sqlutil"
	"github.com/hairizuan-noorazman/jobly/logger"
	"gorm.io/gorm"
)

const companyColumns = `handle, name, description, num_employees, logo_url`

// PostgresStore implements the Store interface with parameterized SQL run through GORM.
type PostgresStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewPostgresStore creates a new PostgreSQL-backed company store.
func NewPostgresStore(db *gorm.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log,
	}
}

// Create inserts a new company.
func (s *PostgresStore) Create(ctx context.Context, c *Company) error {
	if err := c.Validate(); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO companies (handle, name, description, num_employees, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+companyColumns,
		c.Handle, c.Name, c.Description, c.NumEmployees, c.LogoURL,
	).Scan(c).Error
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateCompany
		}
		s.logger.Error(ctx, "failed to create company", map[string]interface{}{
			"error":  err.Error(),
			"handle": c.Handle,
		})
		return err
	}

	s.logger.Info(ctx, "company created", map[string]interface{}{
		"handle": c.Handle,
	})

	return nil
}

// Get retrieves a company and the jobs it offers.
func (s *PostgresStore) Get(ctx context.Context, handle string) (*Company, error) {
	var c Company
	tx := s.db.WithContext(ctx).Raw(
		`SELECT `+companyColumns+`
		 FROM companies
		 WHERE handle = $1`, handle,
	).Scan(&c)
	if tx.Error != nil {
		s.logger.Error(ctx, "failed to get company", map[string]interface{}{
			"error":  tx.Error.Error(),
			"handle": handle,
		})
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrCompanyNotFound
	}

	jobs := make([]JobSummary, 0)
	err := s.db.WithContext(ctx).Raw(
		`SELECT id, title, salary, equity
		 FROM jobs
		 WHERE company_handle = $1
		 ORDER BY id`, handle,
	).Scan(&jobs).Error
	if err != nil {
		s.logger.Error(ctx, "failed to get company jobs", map[string]interface{}{
			"error":  err.Error(),
			"handle": handle,
		})
		return nil, err
	}
	c.Jobs = jobs

	return &c, nil
}

// FindAll lists companies matching the filter, ordered by name.
func (s *PostgresStore) FindAll(ctx context.Context, filter Filter) ([]*Company, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []interface{}
	)
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where = append(where, "LOWER(name) LIKE LOWER("+sqlutil.Placeholder(len(args))+")")
	}
	if filter.MinEmployees != nil {
		args = append(args, *filter.MinEmployees)
		where = append(where, "num_employees >= "+sqlutil.Placeholder(len(args)))
	}
	if filter.MaxEmployees != nil {
		args = append(args, *filter.MaxEmployees)
		where = append(where, "num_employees <= "+sqlutil.Placeholder(len(args)))
	}

	query := `SELECT ` + companyColumns + ` FROM companies`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY name`

	companies := make([]*Company, 0)
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&companies).Error; err != nil {
		s.logger.Error(ctx, "failed to list companies", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return companies, nil
}

// Update applies a partial update to the company.
func (s *PostgresStore) Update(ctx context.Context, handle string, setters ...UpdateSetter) (*Company, error) {
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

	query := fmt.Sprintf(`UPDATE companies
		SET %s
		WHERE handle = %s
		RETURNING %s`, set.Columns, set.NextPlaceholder(), companyColumns)

	var c Company
	tx := s.db.WithContext(ctx).Raw(query, append(set.Values, handle)...).Scan(&c)
	if tx.Error != nil {
		if database.IsUniqueViolation(tx.Error) {
			return nil, ErrDuplicateCompany
		}
		s.logger.Error(ctx, "failed to update company", map[string]interface{}{
			"error":  tx.Error.Error(),
			"handle": handle,
			"fields": data.Fields(),
		})
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrCompanyNotFound
	}

	s.logger.Info(ctx, "company updated", map[string]interface{}{
		"handle": handle,
		"fields": data.Fields(),
	})

	return &c, nil
}

// Remove deletes a company by handle.
func (s *PostgresStore) Remove(ctx context.Context, handle string) error {
	var deleted string
	tx := s.db.WithContext(ctx).Raw(
		`DELETE FROM companies
		 WHERE handle = $1
		 RETURNING handle`, handle,
	).Scan(&deleted)
	if tx.Error != nil {
		s.logger.Error(ctx, "failed to delete company", map[string]interface{}{
			"error":  tx.Error.Error(),
			"handle": handle,
		})
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrCompanyNotFound
	}

	s.logger.Info(ctx, "company deleted", map[string]interface{}{
		"handle": handle,
	})

	return nil
}
