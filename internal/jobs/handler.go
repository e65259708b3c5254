package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/store"
	"github.com/pagemark/pagemark/internal/utils"
	"github.com/pagemark/pagemark/internal/validators"
	"github.com/pagemark/pagemark/models"
)

// TriggerHandler exposes the job-trigger HTTP endpoints. Cleanup runs
// synchronously and reports its outcome; the other jobs are accepted with 202
// and run in the background, their outcome lands in the job-status store.
type TriggerHandler struct {
	runner    *Runner
	statuses  store.JobStatusRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewTriggerHandler(runner *Runner, statuses store.JobStatusRepository, logger *logger.Logger) *TriggerHandler {
	return &TriggerHandler{
		runner:    runner,
		statuses:  statuses,
		validator: validators.NewJobPayloadValidator(),
		logger:    logger,
	}
}

func (h *TriggerHandler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Post("/cleanup/images", h.triggerCleanup)
	router.Post("/images/upload", h.triggerUpload)
	router.Post("/pages/save", h.triggerSave)
	router.Post("/reminders/tasks", h.triggerReminders)

	router.Get("/jobs", h.listJobs)
	router.Get("/jobs/{jobID}", h.getJobStatus)

	return router
}

func (h *TriggerHandler) triggerCleanup(w http.ResponseWriter, r *http.Request) {
	var req models.CleanupRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	jobID := NewJobID(models.JobTypeCleanup)

	if _, err := h.runner.RunCleanup(r.Context(), jobID, req); err != nil {
		h.logger.Err(err).Str("job_id", jobID).Msg("cleanup job failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, models.JobAccepted{
		Message:     "Cleanup completed",
		JobID:       jobID,
		CleanupType: req.CleanupType,
	}, http.StatusOK)
}

func (h *TriggerHandler) triggerUpload(w http.ResponseWriter, r *http.Request) {
	var req models.UploadImageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	jobID := NewJobID(models.JobTypeUpload)

	// detach from the request: the trigger answers before the job finishes
	go h.runner.RunUpload(context.Background(), jobID, req)

	utils.WriteJSON(w, models.JobAccepted{
		Message: "Image upload accepted",
		JobID:   jobID,
	}, http.StatusAccepted)
}

func (h *TriggerHandler) triggerSave(w http.ResponseWriter, r *http.Request) {
	var req models.SavePageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	jobID := NewJobID(models.JobTypeSave)

	go h.runner.RunSave(context.Background(), jobID, req)

	utils.WriteJSON(w, models.JobAccepted{
		Message: "Page save accepted",
		JobID:   jobID,
	}, http.StatusAccepted)
}

func (h *TriggerHandler) triggerReminders(w http.ResponseWriter, r *http.Request) {
	// an empty body is a valid reminder trigger
	var req models.ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON body"}, http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	jobID := NewJobID(models.JobTypeReminders)

	go h.runner.RunReminders(context.Background(), jobID, req)

	utils.WriteJSON(w, models.JobAccepted{
		Message: "Reminder dispatch accepted",
		JobID:   jobID,
	}, http.StatusAccepted)
}

// defaultJobListLimit caps a /jobs listing when the caller does not ask for a
// specific size.
const defaultJobListLimit = 50

func (h *TriggerHandler) listJobs(w http.ResponseWriter, r *http.Request) {
	limit := defaultJobListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid limit"}, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	recent, err := h.statuses.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Err(err).Msg("listing job statuses")
		utils.WriteJSON(w, models.ErrorResponse{Error: "internal error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, recent, http.StatusOK)
}

func (h *TriggerHandler) getJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	job, err := h.statuses.GetStatus(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			utils.WriteJSON(w, models.ErrorResponse{Error: "job not found"}, http.StatusNotFound)
			return
		}
		h.logger.Err(err).Str("job_id", jobID).Msg("reading job status")
		utils.WriteJSON(w, models.ErrorResponse{Error: "internal error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

// decodeAndValidate decodes the JSON body into req and validates it. On
// failure it writes the 400 error response and returns false.
func (h *TriggerHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid JSON body"}, http.StatusBadRequest)
		return false
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return false
	}

	return true
}
