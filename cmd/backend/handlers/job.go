package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/jobly/internal/sqlutil"
	"github.com/hairizuan-noorazman/jobly/job"
	"github.com/hairizuan-noorazman/jobly/logger"
)

// JobHandler handles job-related requests.
type JobHandler struct {
	jobStore job.Store
	logger   logger.Logger
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobStore job.Store, log logger.Logger) *JobHandler {
	return &JobHandler{
		jobStore: jobStore,
		logger:   log,
	}
}

// CreateJobRequest represents a job creation request.
type CreateJobRequest struct {
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// UpdateJobRequest represents a partial job update. The id and company of a
// job cannot be changed.
type UpdateJobRequest struct {
	Title  Optional[string]  `json:"title"`
	Salary Optional[int]     `json:"salary"`
	Equity Optional[float64] `json:"equity"`
}

// JobResponse wraps a single job.
type JobResponse struct {
	Job interface{} `json:"job"`
}

// JobsResponse wraps a list of jobs.
type JobsResponse struct {
	Jobs []*job.Job `json:"jobs"`
}

func isJobValidationError(err error) bool {
	return errors.Is(err, job.ErrInvalidTitle) ||
		errors.Is(err, job.ErrInvalidSalary) ||
		errors.Is(err, job.ErrInvalidEquity) ||
		errors.Is(err, job.ErrInvalidCompany) ||
		errors.Is(err, job.ErrInvalidSalaryFilter) ||
		errors.Is(err, job.ErrCompanyNotFound) ||
		errors.Is(err, sqlutil.ErrNoData)
}

// Create handles creating a new job.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	j := &job.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	}

	if err := h.jobStore.Create(r.Context(), j); err != nil {
		if isJobValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to create job", err, map[string]interface{}{
			"company_handle": req.CompanyHandle,
		})
		return
	}

	respondJSON(w, http.StatusCreated, JobResponse{Job: j})
}

// List handles listing jobs with optional title, minSalary and hasEquity filters.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	if !rejectUnknownQuery(w, r, "title", "minSalary", "hasEquity") {
		return
	}

	minSalary, err := queryInt(r, "minSalary")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	hasEquity, err := queryBool(r, "hasEquity")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := job.Filter{
		Title:     r.URL.Query().Get("title"),
		MinSalary: minSalary,
		HasEquity: hasEquity,
	}

	jobs, err := h.jobStore.Find(r.Context(), filter)
	if err != nil {
		if isJobValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to list jobs", err, nil)
		return
	}

	respondJSON(w, http.StatusOK, JobsResponse{Jobs: jobs})
}

// Get handles retrieving a job with its company.
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	detail, err := h.jobStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to get job", err, map[string]interface{}{
			"job_id": id,
		})
		return
	}

	respondJSON(w, http.StatusOK, JobResponse{Job: detail})
}

// Update handles a partial job update.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	var req UpdateJobRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var setters []job.UpdateSetter
	if req.Title.Set {
		if req.Title.Value == nil {
			respondError(w, http.StatusBadRequest, job.ErrInvalidTitle.Error())
			return
		}
		setters = append(setters, job.SetTitle(*req.Title.Value))
	}
	if req.Salary.Set {
		setters = append(setters, job.SetSalary(req.Salary.Value))
	}
	if req.Equity.Set {
		setters = append(setters, job.SetEquity(req.Equity.Value))
	}

	j, err := h.jobStore.Update(r.Context(), id, setters...)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		if isJobValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to update job", err, map[string]interface{}{
			"job_id": id,
		})
		return
	}

	respondJSON(w, http.StatusOK, JobResponse{Job: j})
}

// Delete handles removing a job.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseJobID(w, r)
	if !ok {
		return
	}

	if err := h.jobStore.Remove(r.Context(), id); err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondInternalError(w, r, h.logger, "failed to delete job", err, map[string]interface{}{
			"job_id": id,
		})
		return
	}

	respondJSON(w, http.StatusOK, DeletedResponse{Deleted: strconv.Itoa(id)})
}

// parseJobID reads the {id} path variable. Ids that are not integers cannot
// name a job, so they answer 404.
func parseJobID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusNotFound, job.ErrJobNotFound.Error())
		return 0, false
	}
	return id, true
}
