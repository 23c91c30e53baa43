package job

import (
	"context"
	"testing"

	"github.com/hairizuan-noorazman/jobly/internal/sqlutil"
	"github.com/hairizuan-noorazman/jobly/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Create(t *testing.T) {
	db, store, _ := setupTestStore(t)
	ctx := context.Background()

	t.Run("successfully create job", func(t *testing.T) {
		j := &Job{Title: "test2", Salary: intPtr(13000), Equity: floatPtr(0.3), CompanyHandle: "c1"}
		require.NoError(t, store.Create(ctx, j))
		assert.NotZero(t, j.ID)
		assert.Equal(t, "test2", j.Title)
		assert.Equal(t, 13000, *j.Salary)
		assert.InDelta(t, 0.3, *j.Equity, 1e-9)
		assert.Equal(t, "c1", j.CompanyHandle)

		var stored []*Job
		require.NoError(t, db.Raw("SELECT id, title, salary, equity, company_handle FROM jobs WHERE title = 'test2'").Scan(&stored).Error)
		require.Len(t, stored, 1)
		assert.Equal(t, j.ID, stored[0].ID)
	})

	t.Run("create job without salary or equity", func(t *testing.T) {
		j := &Job{Title: "volunteer", CompanyHandle: "c3"}
		require.NoError(t, store.Create(ctx, j))
		assert.NotZero(t, j.ID)
		assert.Nil(t, j.Salary)
		assert.Nil(t, j.Equity)
	})

	t.Run("unknown company returns error", func(t *testing.T) {
		j := &Job{Title: "ghost", CompanyHandle: "fake"}
		assert.ErrorIs(t, store.Create(ctx, j), ErrCompanyNotFound)
	})

	t.Run("invalid job returns error", func(t *testing.T) {
		j := &Job{Title: "greedy", Equity: floatPtr(1.5), CompanyHandle: "c1"}
		assert.ErrorIs(t, store.Create(ctx, j), ErrInvalidEquity)
	})
}

func TestPostgresStore_Finders(t *testing.T) {
	_, store, _ := setupTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		find func() ([]*Job, error)
		want []string
	}{
		{
			name: "find all",
			find: func() ([]*Job, error) { return store.FindAll(ctx) },
			want: []string{"j1", "j2", "j3"},
		},
		{
			name: "find by title",
			find: func() ([]*Job, error) { return store.FindByTitle(ctx, "1") },
			want: []string{"j1"},
		},
		{
			name: "find by title ignores case",
			find: func() ([]*Job, error) { return store.FindByTitle(ctx, "J") },
			want: []string{"j1", "j2", "j3"},
		},
		{
			name: "find by salary",
			find: func() ([]*Job, error) { return store.FindBySalary(ctx, 8000) },
			want: []string{"j1", "j2"},
		},
		{
			name: "find by equity excludes zero and null",
			find: func() ([]*Job, error) { return store.FindByEquity(ctx) },
			want: []string{"j1"},
		},
		{
			name: "find by equity and salary",
			find: func() ([]*Job, error) { return store.FindByEquityAndSalary(ctx, 16000) },
			want: []string{},
		},
		{
			name: "find by title and salary",
			find: func() ([]*Job, error) { return store.FindByTitleAndSalary(ctx, "j", 7500) },
			want: []string{"j1", "j2"},
		},
		{
			name: "find by title and equity",
			find: func() ([]*Job, error) { return store.FindByTitleAndEquity(ctx, "j") },
			want: []string{"j1"},
		},
		{
			name: "find by all",
			find: func() ([]*Job, error) { return store.FindByAll(ctx, "j", 7000) },
			want: []string{"j1"},
		},
		{
			name: "no matches",
			find: func() ([]*Job, error) { return store.FindByTitle(ctx, "nope") },
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := tt.find()
			require.NoError(t, err)
			assert.NotNil(t, jobs)
			assert.Equal(t, tt.want, titles(jobs))
		})
	}
}

func TestPostgresStore_Find(t *testing.T) {
	_, store, _ := setupTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter", filter: Filter{}, want: []string{"j1", "j2", "j3"}},
		{name: "salary", filter: Filter{MinSalary: intPtr(10000)}, want: []string{"j1"}},
		{name: "equity", filter: Filter{HasEquity: true}, want: []string{"j1"}},
		{name: "title", filter: Filter{Title: "2"}, want: []string{"j2"}},
		{name: "title and salary", filter: Filter{Title: "j", MinSalary: intPtr(7500)}, want: []string{"j1", "j2"}},
		{name: "title and equity", filter: Filter{Title: "2", HasEquity: true}, want: []string{}},
		{name: "equity and salary", filter: Filter{MinSalary: intPtr(1000), HasEquity: true}, want: []string{"j1"}},
		{name: "all", filter: Filter{Title: "j", MinSalary: intPtr(7000), HasEquity: true}, want: []string{"j1"}},
		{name: "zero salary floor still filters", filter: Filter{MinSalary: intPtr(0)}, want: []string{"j1", "j2", "j3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := store.Find(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(jobs))
		})
	}

	t.Run("negative salary returns error", func(t *testing.T) {
		_, err := store.Find(ctx, Filter{MinSalary: intPtr(-1)})
		assert.ErrorIs(t, err, ErrInvalidSalaryFilter)
	})
}

func TestPostgresStore_Get(t *testing.T) {
	_, store, ids := setupTestStore(t)
	ctx := context.Background()

	t.Run("job with company", func(t *testing.T) {
		d, err := store.Get(ctx, ids["j1"])
		require.NoError(t, err)
		assert.Equal(t, ids["j1"], d.ID)
		assert.Equal(t, "j1", d.Title)
		assert.Equal(t, 15000, *d.Salary)
		assert.InDelta(t, 0.6, *d.Equity, 1e-9)
		require.NotNil(t, d.Company)
		assert.Equal(t, "c1", d.Company.Handle)
		assert.Equal(t, "C1", d.Company.Name)
		assert.Equal(t, "Desc1", d.Company.Description)
		assert.Equal(t, 1, *d.Company.NumEmployees)
		assert.Equal(t, "http://c1.img", *d.Company.LogoURL)
	})

	t.Run("non-existent job returns error", func(t *testing.T) {
		_, err := store.Get(ctx, 0)
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestPostgresStore_Update(t *testing.T) {
	_, store, ids := setupTestStore(t)
	ctx := context.Background()

	t.Run("update title", func(t *testing.T) {
		j, err := store.Update(ctx, ids["j1"], SetTitle("New"))
		require.NoError(t, err)
		assert.Equal(t, ids["j1"], j.ID)
		assert.Equal(t, "New", j.Title)
		assert.Equal(t, 15000, *j.Salary)
		assert.InDelta(t, 0.6, *j.Equity, 1e-9)
		assert.Equal(t, "c1", j.CompanyHandle)
	})

	t.Run("update multiple fields", func(t *testing.T) {
		j, err := store.Update(ctx, ids["j2"], SetSalary(intPtr(9000)), SetEquity(floatPtr(0.1)))
		require.NoError(t, err)
		assert.Equal(t, 9000, *j.Salary)
		assert.InDelta(t, 0.1, *j.Equity, 1e-9)
	})

	t.Run("clear salary", func(t *testing.T) {
		j, err := store.Update(ctx, ids["j2"], SetSalary(nil))
		require.NoError(t, err)
		assert.Nil(t, j.Salary)
	})

	t.Run("move to another company", func(t *testing.T) {
		j, err := store.Update(ctx, ids["j3"], SetCompanyHandle("c3"))
		require.NoError(t, err)
		assert.Equal(t, "c3", j.CompanyHandle)
	})

	t.Run("move to unknown company returns error", func(t *testing.T) {
		_, err := store.Update(ctx, ids["j3"], SetCompanyHandle("fake"))
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})

	t.Run("no setters returns error", func(t *testing.T) {
		_, err := store.Update(ctx, ids["j1"])
		assert.ErrorIs(t, err, sqlutil.ErrNoData)
	})

	t.Run("invalid setter returns error", func(t *testing.T) {
		_, err := store.Update(ctx, ids["j1"], SetEquity(floatPtr(1.2)))
		assert.ErrorIs(t, err, ErrInvalidEquity)
	})

	t.Run("non-existent job returns error", func(t *testing.T) {
		_, err := store.Update(ctx, 0, SetTitle("I don't exist"))
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestPostgresStore_Remove(t *testing.T) {
	_, store, ids := setupTestStore(t)
	ctx := context.Background()

	t.Run("remove job", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, ids["j1"]))

		_, err := store.Get(ctx, ids["j1"])
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("non-existent job returns error", func(t *testing.T) {
		assert.ErrorIs(t, store.Remove(ctx, 0), ErrJobNotFound)
	})
}

func TestPostgresStore_DatabaseFailure(t *testing.T) {
	db, store, _ := setupTestStore(t)
	ctx := context.Background()

	testutil.DropTable(t, db, "jobs")

	_, err := store.FindAll(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrJobNotFound)
}
