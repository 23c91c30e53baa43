package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/jobly/auth"
	"github.com/hairizuan-noorazman/jobly/company"
	"github.com/hairizuan-noorazman/jobly/job"
	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/storage"
	"github.com/hairizuan-noorazman/jobly/user"
)

// RouterConfig holds everything the API routes depend on.
type RouterConfig struct {
	JobStore     job.Store
	CompanyStore company.Store
	UserStore    user.Store
	Issuer       *auth.Issuer
	BlobStorage  storage.BlobStorage
	MaxLogoBytes int64

	// DB backs /ready. Nil leaves the route unregistered.
	DB Pinger

	// FilesDir and FilesPrefix serve locally stored uploads. Both empty
	// disables the file server.
	FilesDir    string
	FilesPrefix string

	Logger logger.Logger
}

// NewRouter builds the API router.
func NewRouter(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)

	authMiddleware := NewAuthMiddleware(cfg.Issuer, cfg.Logger)
	router.Use(RequestLogger(cfg.Logger))
	router.Use(authMiddleware.Authenticate)

	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(h)
	}

	// Health check endpoint (public)
	router.HandleFunc("/health", HealthHandler).Methods("GET")
	if cfg.DB != nil {
		router.HandleFunc("/ready", ReadyHandler(cfg.DB, cfg.Logger)).Methods("GET")
	}

	authHandler := NewAuthHandler(cfg.UserStore, cfg.Issuer, cfg.Logger)
	router.HandleFunc("/auth/token", authHandler.Token).Methods("POST")
	router.HandleFunc("/auth/register", authHandler.Register).Methods("POST")

	jobHandler := NewJobHandler(cfg.JobStore, cfg.Logger)
	router.Handle("/jobs", admin(jobHandler.Create)).Methods("POST")
	router.HandleFunc("/jobs", jobHandler.List).Methods("GET")
	router.HandleFunc("/jobs/{id}", jobHandler.Get).Methods("GET")
	router.Handle("/jobs/{id}", admin(jobHandler.Update)).Methods("PATCH")
	router.Handle("/jobs/{id}", admin(jobHandler.Delete)).Methods("DELETE")

	companyHandler := NewCompanyHandler(cfg.CompanyStore, cfg.BlobStorage, cfg.MaxLogoBytes, cfg.Logger)
	router.Handle("/companies", admin(companyHandler.Create)).Methods("POST")
	router.HandleFunc("/companies", companyHandler.List).Methods("GET")
	router.HandleFunc("/companies/{handle}", companyHandler.Get).Methods("GET")
	router.Handle("/companies/{handle}", admin(companyHandler.Update)).Methods("PATCH")
	router.Handle("/companies/{handle}", admin(companyHandler.Delete)).Methods("DELETE")
	router.Handle("/companies/{handle}/logo", admin(companyHandler.UploadLogo)).Methods("PUT")

	if cfg.FilesDir != "" && cfg.FilesPrefix != "" {
		prefix := "/" + strings.Trim(cfg.FilesPrefix, "/") + "/"
		router.PathPrefix(prefix).Handler(
			http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.FilesDir))),
		).Methods("GET", "HEAD")
	}

	return router
}
