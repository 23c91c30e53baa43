package job

import (
	"errors"

	"github.com/hairizuan-noorazman/jobly/company"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrInvalidTitle        = errors.New("title is required")
	ErrInvalidSalary       = errors.New("salary must be zero or greater")
	ErrInvalidEquity       = errors.New("equity must be between 0 and 1.0")
	ErrInvalidCompany      = errors.New("companyHandle is required")
	ErrInvalidSalaryFilter = errors.New("minSalary must be zero or greater")
)

// Job is a position offered by a company.
type Job struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// TableName returns the database table name.
func (Job) TableName() string {
	return "jobs"
}

// Validate checks the fields required to insert a job.
func (j *Job) Validate() error {
	if j.Title == "" {
		return ErrInvalidTitle
	}
	if err := validateSalary(j.Salary); err != nil {
		return err
	}
	if err := validateEquity(j.Equity); err != nil {
		return err
	}
	if j.CompanyHandle == "" {
		return ErrInvalidCompany
	}
	return nil
}

// HasEquity reports whether the job offers a non-zero equity share.
func (j *Job) HasEquity() bool {
	return j.Equity != nil && *j.Equity > 0
}

// Detail is a job with its company expanded.
type Detail struct {
	ID      int              `json:"id"`
	Title   string           `json:"title"`
	Salary  *int             `json:"salary"`
	Equity  *float64         `json:"equity"`
	Company *company.Company `json:"company"`
}

// Filter selects jobs for Store.Find. A nil MinSalary and empty Title leave
// that criterion out; HasEquity false does not filter on equity.
type Filter struct {
	Title     string
	MinSalary *int
	HasEquity bool
}

// Validate rejects a negative salary floor.
func (f Filter) Validate() error {
	if f.MinSalary != nil && *f.MinSalary < 0 {
		return ErrInvalidSalaryFilter
	}
	return nil
}

func validateSalary(salary *int) error {
	if salary != nil && *salary < 0 {
		return ErrInvalidSalary
	}
	return nil
}

func validateEquity(equity *float64) error {
	if equity != nil && (*equity < 0 || *equity > 1.0) {
		return ErrInvalidEquity
	}
	return nil
}
