package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/jobly/company"
	"github.com/hairizuan-noorazman/jobly/internal/sqlutil"
	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/storage"
)

// DefaultMaxLogoBytes caps logo uploads when no limit is configured.
const DefaultMaxLogoBytes = 2 << 20

// CompanyHandler handles company-related requests.
type CompanyHandler struct {
	companyStore company.Store
	blobStorage  storage.BlobStorage
	maxLogoBytes int64
	logger       logger.Logger
}

// NewCompanyHandler creates a new company handler. blobStorage may be nil, in
// which case logo uploads are unavailable.
func NewCompanyHandler(companyStore company.Store, blobStorage storage.BlobStorage, maxLogoBytes int64, log logger.Logger) *CompanyHandler {
	if maxLogoBytes <= 0 {
		maxLogoBytes = DefaultMaxLogoBytes
	}
	return &CompanyHandler{
		companyStore: companyStore,
		blobStorage:  blobStorage,
		maxLogoBytes: maxLogoBytes,
		logger:       log,
	}
}

// CreateCompanyRequest represents a company creation request.
type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// UpdateCompanyRequest represents a partial company update. The handle cannot
// be changed.
type UpdateCompanyRequest struct {
	Name         Optional[string] `json:"name"`
	Description  Optional[string] `json:"description"`
	NumEmployees Optional[int]    `json:"numEmployees"`
	LogoURL      Optional[string] `json:"logoUrl"`
}

// CompanyResponse wraps a single company.
type CompanyResponse struct {
	Company *company.Company `json:"company"`
}

// CompaniesResponse wraps a list of companies.
type CompaniesResponse struct {
	Companies []*company.Company `json:"companies"`
}

func isCompanyValidationError(err error) bool {
	return errors.Is(err, company.ErrInvalidHandle) ||
		errors.Is(err, company.ErrInvalidName) ||
		errors.Is(err, company.ErrInvalidDescription) ||
		errors.Is(err, company.ErrInvalidNumEmployees) ||
		errors.Is(err, company.ErrInvalidEmployeeRange) ||
		errors.Is(err, company.ErrDuplicateCompany) ||
		errors.Is(err, sqlutil.ErrNoData)
}

// Create handles creating a new company.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := &company.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}

	if err := h.companyStore.Create(r.Context(), c); err != nil {
		if isCompanyValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to create company", err, map[string]interface{}{
			"handle": req.Handle,
		})
		return
	}

	respondJSON(w, http.StatusCreated, CompanyResponse{Company: c})
}

// List handles listing companies with optional name and size filters.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	if !rejectUnknownQuery(w, r, "name", "minEmployees", "maxEmployees") {
		return
	}

	minEmployees, err := queryInt(r, "minEmployees")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	maxEmployees, err := queryInt(r, "maxEmployees")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	companies, err := h.companyStore.FindAll(r.Context(), company.Filter{
		Name:         r.URL.Query().Get("name"),
		MinEmployees: minEmployees,
		MaxEmployees: maxEmployees,
	})
	if err != nil {
		if isCompanyValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to list companies", err, nil)
		return
	}

	respondJSON(w, http.StatusOK, CompaniesResponse{Companies: companies})
}

// Get handles retrieving a company with its jobs.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]

	c, err := h.companyStore.Get(r.Context(), handle)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to get company", err, map[string]interface{}{
			"handle": handle,
		})
		return
	}

	respondJSON(w, http.StatusOK, CompanyResponse{Company: c})
}

// Update handles a partial company update.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]

	var req UpdateCompanyRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var setters []company.UpdateSetter
	if req.Name.Set {
		if req.Name.Value == nil {
			respondError(w, http.StatusBadRequest, company.ErrInvalidName.Error())
			return
		}
		setters = append(setters, company.SetName(*req.Name.Value))
	}
	if req.Description.Set {
		if req.Description.Value == nil {
			respondError(w, http.StatusBadRequest, company.ErrInvalidDescription.Error())
			return
		}
		setters = append(setters, company.SetDescription(*req.Description.Value))
	}
	if req.NumEmployees.Set {
		setters = append(setters, company.SetNumEmployees(req.NumEmployees.Value))
	}
	if req.LogoURL.Set {
		setters = append(setters, company.SetLogoURL(req.LogoURL.Value))
	}

	h.update(w, r, handle, setters...)
}

// UploadLogo stores the request body as the company's logo and points
// logoUrl at it.
func (h *CompanyHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]

	if h.blobStorage == nil {
		respondError(w, http.StatusNotImplemented, "logo uploads are not configured")
		return
	}

	if _, err := h.companyStore.Get(r.Context(), handle); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to get company", err, map[string]interface{}{
			"handle": handle,
		})
		return
	}

	contentType := r.Header.Get("Content-Type")
	key, err := storage.LogoKey(handle, contentType)
	if err != nil {
		respondError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	if r.ContentLength > h.maxLogoBytes {
		respondError(w, http.StatusRequestEntityTooLarge, "logo is too large")
		return
	}
	body := http.MaxBytesReader(w, r.Body, h.maxLogoBytes)

	if err := h.blobStorage.Upload(r.Context(), key, contentType, body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "logo is too large")
			return
		}
		respondInternalError(w, r, h.logger, "failed to upload logo", err, map[string]interface{}{
			"handle": handle,
			"key":    key,
		})
		return
	}

	url := h.blobStorage.URL(key)
	c, ok := h.update(w, r, handle, company.SetLogoURL(&url))
	if !ok {
		if err := h.blobStorage.Delete(r.Context(), key); err != nil {
			h.logger.Warn(r.Context(), "failed to remove orphaned logo", map[string]interface{}{
				"error": err.Error(),
				"key":   key,
			})
		}
		return
	}

	h.logger.Info(r.Context(), "company logo uploaded", map[string]interface{}{
		"handle":   c.Handle,
		"logo_url": url,
	})
}

// Delete handles removing a company and its jobs.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handle := mux.Vars(r)["handle"]

	if err := h.companyStore.Remove(r.Context(), handle); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to delete company", err, map[string]interface{}{
			"handle": handle,
		})
		return
	}

	respondJSON(w, http.StatusOK, DeletedResponse{Deleted: handle})
}

func (h *CompanyHandler) update(w http.ResponseWriter, r *http.Request, handle string, setters ...company.UpdateSetter) (*company.Company, bool) {
	c, err := h.companyStore.Update(r.Context(), handle, setters...)
	if err != nil {
		switch {
		case errors.Is(err, company.ErrCompanyNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case isCompanyValidationError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondInternalError(w, r, h.logger, "failed to update company", err, map[string]interface{}{
				"handle": handle,
			})
		}
		return nil, false
	}

	respondJSON(w, http.StatusOK, CompanyResponse{Company: c})
	return c, true
}
