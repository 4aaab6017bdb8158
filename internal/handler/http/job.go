package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jobify-dev/jobify/internal/logger"
	"github.com/jobify-dev/jobify/internal/utils"
	"github.com/jobify-dev/jobify/models"
)

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.JobService.CreateJob(ctx, req.Job())
	if err != nil {
		log.Err(err).Str("title", req.Title).Msg("error creating job")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	jobs, err := h.services.JobService.ListJobs(ctx)
	if err != nil {
		log.Err(err).Msg("error listing jobs")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, jobs, http.StatusOK)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	jobID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid job id")
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	job, err := h.services.JobService.GetJob(ctx, jobID)
	if err != nil {
		log.Err(err).Int64("job", jobID).Msg("error getting job")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, job, http.StatusOK)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.CategoriesResponse{
		Categories: h.services.JobService.Categories(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) apply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	jobID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid job id")
		http.Error(w, "invalid job id", http.StatusBadRequest)
		return
	}

	if err := h.services.ApplicationService.Apply(ctx, jobID, userID); err != nil {
		log.Err(err).Int64("job", jobID).Int64("user", userID).Msg("error applying to job")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ApplyResponse{Msg: "application submitted"}, http.StatusOK)
}

func (h *Handler) applied(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	jobs, err := h.services.ApplicationService.ListApplied(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user", userID).Msg("error listing applied jobs")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, jobs, http.StatusOK)
}
