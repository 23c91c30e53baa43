package company

import (
	"errors"
	"strings"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrDuplicateCompany     = errors.New("company already exists")
	ErrInvalidHandle        = errors.New("handle is required and must be lowercase")
	ErrInvalidName          = errors.New("name is required")
	ErrInvalidDescription   = errors.New("description is required")
	ErrInvalidNumEmployees  = errors.New("numEmployees must be zero or greater")
	ErrInvalidEmployeeRange = errors.New("minEmployees cannot be greater than maxEmployees")
)

// MaxHandleLength matches the width of companies.handle.
const MaxHandleLength = 25

// Company is a hiring company. Jobs is only populated by Store.Get.
type Company struct {
	Handle       string       `json:"handle"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	NumEmployees *int         `json:"numEmployees"`
	LogoURL      *string      `json:"logoUrl"`
	Jobs         []JobSummary `json:"jobs,omitempty" gorm:"-"`
}

// JobSummary is a job listed under its company.
type JobSummary struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Salary *int     `json:"salary"`
	Equity *float64 `json:"equity"`
}

// TableName returns the database table name.
func (Company) TableName() string {
	return "companies"
}

// Validate checks the fields required to insert a company.
func (c *Company) Validate() error {
	if c.Handle == "" || len(c.Handle) > MaxHandleLength || c.Handle != strings.ToLower(c.Handle) {
		return ErrInvalidHandle
	}
	if c.Name == "" {
		return ErrInvalidName
	}
	if c.Description == "" {
		return ErrInvalidDescription
	}
	if c.NumEmployees != nil && *c.NumEmployees < 0 {
		return ErrInvalidNumEmployees
	}
	return nil
}

// Filter narrows Store.FindAll. Zero-valued fields are ignored.
type Filter struct {
	Name         string
	MinEmployees *int
	MaxEmployees *int
}

// Validate rejects an inverted employee range.
func (f Filter) Validate() error {
	if f.MinEmployees != nil && f.MaxEmployees != nil && *f.MinEmployees > *f.MaxEmployees {
		return ErrInvalidEmployeeRange
	}
	return nil
}
