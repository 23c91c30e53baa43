package main

// ErrorResponse matches handlers.ErrorResponse.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeletedResponse matches handlers.DeletedResponse.
type DeletedResponse struct {
	Deleted string `json:"deleted"`
}

// TokenRequest matches handlers.TokenRequest.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse matches handlers.TokenResponse.
type TokenResponse struct {
	Token string `json:"token"`
}

// Job matches job.Job.
type Job struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// JobDetail matches job.Detail.
type JobDetail struct {
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Salary  *int     `json:"salary"`
	Equity  *float64 `json:"equity"`
	Company *Company `json:"company"`
}

// Company matches company.Company.
type Company struct {
	Handle       string       `json:"handle"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	NumEmployees *int         `json:"numEmployees"`
	LogoURL      *string      `json:"logoUrl"`
	Jobs         []JobSummary `json:"jobs,omitempty"`
}

// JobSummary matches company.JobSummary.
type JobSummary struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Salary *int     `json:"salary"`
	Equity *float64 `json:"equity"`
}

// CreateJobRequest matches handlers.CreateJobRequest.
type CreateJobRequest struct {
	Title         string   `json:"title"`
	Salary        *int     `json:"salary,omitempty"`
	Equity        *float64 `json:"equity,omitempty"`
	CompanyHandle string   `json:"companyHandle"`
}

// CreateCompanyRequest matches handlers.CreateCompanyRequest.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
}
