package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/jobly/auth"
	"github.com/hairizuan-noorazman/jobly/company"
	"github.com/hairizuan-noorazman/jobly/job"
	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/storage"
	"github.com/hairizuan-noorazman/jobly/testutil"
	"github.com/hairizuan-noorazman/jobly/user"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv is a router over a seeded database with one regular user (u1) and
// one admin (u2).
type testEnv struct {
	router     *mux.Router
	db         *gorm.DB
	log        *logger.TestLogger
	issuer     *auth.Issuer
	jobIDs     map[string]int
	filesDir   string
	userToken  string
	adminToken string
}

type envOption func(*RouterConfig)

func withMaxLogoBytes(n int64) envOption {
	return func(c *RouterConfig) { c.MaxLogoBytes = n }
}

func setupTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	ids := testutil.SeedJobBoard(t, db)
	log := logger.NewTestLogger()

	issuer, err := auth.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	userStore := user.NewPostgresStore(db, log)
	tokens := make(map[string]string)
	for _, u := range []struct {
		username string
		isAdmin  bool
	}{{"u1", false}, {"u2", true}} {
		account := &user.User{
			Username:  u.username,
			FirstName: "U",
			LastName:  "F",
			Email:     u.username + "@email.com",
			IsAdmin:   u.isAdmin,
		}
		require.NoError(t, account.SetPassword("password-"+u.username))
		require.NoError(t, userStore.Create(context.Background(), account))

		token, err := issuer.Create(account)
		require.NoError(t, err)
		tokens[u.username] = token
	}

	filesDir := t.TempDir()
	blobs, err := storage.NewLocalStorage(filesDir, "/files")
	require.NoError(t, err)

	cfg := RouterConfig{
		JobStore:     job.NewPostgresStore(db, log),
		CompanyStore: company.NewPostgresStore(db, log),
		UserStore:    userStore,
		Issuer:       issuer,
		BlobStorage:  blobs,
		FilesDir:     filesDir,
		FilesPrefix:  "/files",
		Logger:       log,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &testEnv{
		router:     NewRouter(cfg),
		db:         db,
		log:        log,
		issuer:     issuer,
		jobIDs:     ids,
		filesDir:   filesDir,
		userToken:  tokens["u1"],
		adminToken: tokens["u2"],
	}
}

// do sends a request through the router. body may be nil, a string of raw
// JSON, or a value to encode.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest), "body: %s", rec.Body.String())
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	return resp.Error
}
