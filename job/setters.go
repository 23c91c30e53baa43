package job

import "github.com/hairizuan-noorazman/jobly/internal/sqlutil"

// SetTitle changes the job title.
func SetTitle(title string) UpdateSetter {
	return func(d *sqlutil.Data) error {
		if title == "" {
			return ErrInvalidTitle
		}
		d.Set("title", title)
		return nil
	}
}

// SetSalary changes the salary. nil clears it.
func SetSalary(salary *int) UpdateSetter {
	return func(d *sqlutil.Data) error {
		if err := validateSalary(salary); err != nil {
			return err
		}
		d.Set("salary", salary)
		return nil
	}
}

// SetEquity changes the equity share. nil clears it.
func SetEquity(equity *float64) UpdateSetter {
	return func(d *sqlutil.Data) error {
		if err := validateEquity(equity); err != nil {
			return err
		}
		d.Set("equity", equity)
		return nil
	}
}

// SetCompanyHandle moves the job to another company.
func SetCompanyHandle(handle string) UpdateSetter {
	return func(d *sqlutil.Data) error {
		if handle == "" {
			return ErrInvalidCompany
		}
		d.Set("companyHandle", handle)
		return nil
	}
}
