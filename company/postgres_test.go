package company

import (
	"context"
	"testing"

	"github.com/hairizuan-noorazman/jobly/internal/sqlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Create(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("successfully create company", func(t *testing.T) {
		c := &Company{
			Handle:       "new",
			Name:         "New",
			Description:  "New Description",
			NumEmployees: intPtr(1),
			LogoURL:      strPtr("http://new.img"),
		}
		require.NoError(t, store.Create(ctx, c))

		found, err := store.Get(ctx, "new")
		require.NoError(t, err)
		assert.Equal(t, "New", found.Name)
		assert.Equal(t, 1, *found.NumEmployees)
		assert.Equal(t, "http://new.img", *found.LogoURL)
		assert.Empty(t, found.Jobs)
	})

	t.Run("duplicate handle returns error", func(t *testing.T) {
		c := &Company{Handle: "c1", Name: "Other", Description: "Dup"}
		assert.ErrorIs(t, store.Create(ctx, c), ErrDuplicateCompany)
	})

	t.Run("duplicate name returns error", func(t *testing.T) {
		c := &Company{Handle: "other", Name: "C1", Description: "Dup"}
		assert.ErrorIs(t, store.Create(ctx, c), ErrDuplicateCompany)
	})

	t.Run("invalid company returns error", func(t *testing.T) {
		c := &Company{Handle: "nameless", Description: "No name"}
		assert.ErrorIs(t, store.Create(ctx, c), ErrInvalidName)
	})
}

func TestPostgresStore_Get(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("company with jobs", func(t *testing.T) {
		c, err := store.Get(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, "C1", c.Name)
		assert.Equal(t, "Desc1", c.Description)
		assert.Equal(t, 1, *c.NumEmployees)
		assert.Equal(t, "http://c1.img", *c.LogoURL)
		require.Len(t, c.Jobs, 2)
		assert.Equal(t, "j1", c.Jobs[0].Title)
		assert.Equal(t, 15000, *c.Jobs[0].Salary)
		assert.InDelta(t, 0.6, *c.Jobs[0].Equity, 1e-9)
		assert.Equal(t, "j2", c.Jobs[1].Title)
	})

	t.Run("company without jobs", func(t *testing.T) {
		c, err := store.Get(ctx, "c3")
		require.NoError(t, err)
		assert.NotNil(t, c.Jobs)
		assert.Empty(t, c.Jobs)
	})

	t.Run("non-existent company returns error", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestPostgresStore_FindAll(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	handles := func(companies []*Company) []string {
		out := make([]string, len(companies))
		for i, c := range companies {
			out[i] = c.Handle
		}
		return out
	}

	t.Run("no filter", func(t *testing.T) {
		companies, err := store.FindAll(ctx, Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"c1", "c2", "c3"}, handles(companies))
	})

	t.Run("name filter is case-insensitive", func(t *testing.T) {
		companies, err := store.FindAll(ctx, Filter{Name: "c2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c2"}, handles(companies))
	})

	t.Run("employee range", func(t *testing.T) {
		companies, err := store.FindAll(ctx, Filter{MinEmployees: intPtr(2), MaxEmployees: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, []string{"c2", "c3"}, handles(companies))
	})

	t.Run("all filters", func(t *testing.T) {
		companies, err := store.FindAll(ctx, Filter{Name: "3", MinEmployees: intPtr(1), MaxEmployees: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, []string{"c3"}, handles(companies))
	})

	t.Run("no matches returns empty", func(t *testing.T) {
		companies, err := store.FindAll(ctx, Filter{Name: "zzz"})
		require.NoError(t, err)
		assert.NotNil(t, companies)
		assert.Empty(t, companies)
	})

	t.Run("inverted range returns error", func(t *testing.T) {
		_, err := store.FindAll(ctx, Filter{MinEmployees: intPtr(3), MaxEmployees: intPtr(2)})
		assert.ErrorIs(t, err, ErrInvalidEmployeeRange)
	})
}

func TestPostgresStore_Update(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("update all fields", func(t *testing.T) {
		c, err := store.Update(ctx, "c1",
			SetName("New"),
			SetDescription("New Description"),
			SetNumEmployees(intPtr(10)),
			SetLogoURL(strPtr("http://new.img")),
		)
		require.NoError(t, err)
		assert.Equal(t, "c1", c.Handle)
		assert.Equal(t, "New", c.Name)
		assert.Equal(t, "New Description", c.Description)
		assert.Equal(t, 10, *c.NumEmployees)
		assert.Equal(t, "http://new.img", *c.LogoURL)
	})

	t.Run("null fields", func(t *testing.T) {
		c, err := store.Update(ctx, "c2", SetNumEmployees(nil), SetLogoURL(nil))
		require.NoError(t, err)
		assert.Equal(t, "C2", c.Name)
		assert.Nil(t, c.NumEmployees)
		assert.Nil(t, c.LogoURL)
	})

	t.Run("no setters returns error", func(t *testing.T) {
		_, err := store.Update(ctx, "c1")
		assert.ErrorIs(t, err, sqlutil.ErrNoData)
	})

	t.Run("invalid setter returns error", func(t *testing.T) {
		_, err := store.Update(ctx, "c1", SetNumEmployees(intPtr(-5)))
		assert.ErrorIs(t, err, ErrInvalidNumEmployees)
	})

	t.Run("duplicate name returns error", func(t *testing.T) {
		_, err := store.Update(ctx, "c3", SetName("C2"))
		assert.ErrorIs(t, err, ErrDuplicateCompany)
	})

	t.Run("non-existent company returns error", func(t *testing.T) {
		_, err := store.Update(ctx, "nope", SetName("x"))
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestPostgresStore_Remove(t *testing.T) {
	db, store := setupTestStore(t)
	ctx := context.Background()

	t.Run("remove company cascades to jobs", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "c1"))

		_, err := store.Get(ctx, "c1")
		assert.ErrorIs(t, err, ErrCompanyNotFound)

		var count int64
		require.NoError(t, db.Raw("SELECT COUNT(*) FROM jobs WHERE company_handle = 'c1'").Scan(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("non-existent company returns error", func(t *testing.T) {
		assert.ErrorIs(t, store.Remove(ctx, "nope"), ErrCompanyNotFound)
	})
}
