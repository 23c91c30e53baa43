package company

import "github.com/hairizuan-noorazman/jobly/internal/sqlutil"

// SetName returns an UpdateSetter that changes the company name.
func SetName(name string) UpdateSetter {
	return func(d *sqlutil.Data) error {
		if name == "" {
			return ErrInvalidName
		}
		d.Set("name", name)
		return nil
	}
}

// SetDescription returns an UpdateSetter that changes the description.
func SetDescription(description string) UpdateSetter {
	return func(d *sqlutil.Data) error {
		if description == "" {
			return ErrInvalidDescription
		}
		d.Set("description", description)
		return nil
	}
}

// SetNumEmployees returns an UpdateSetter for the head count. nil clears it.
func SetNumEmployees(n *int) UpdateSetter {
	return func(d *sqlutil.Data) error {
		if n != nil && *n < 0 {
			return ErrInvalidNumEmployees
		}
		d.Set("numEmployees", n)
		return nil
	}
}

// SetLogoURL returns an UpdateSetter for the logo location. nil clears it.
func SetLogoURL(url *string) UpdateSetter {
	return func(d *sqlutil.Data) error {
		d.Set("logoUrl", url)
		return nil
	}
}
