package http

import (
	"encoding/json"
	"net/http"

	"github.com/pagemark/pagemark/internal/logger"
	"github.com/pagemark/pagemark/internal/utils"
	"github.com/pagemark/pagemark/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	task.OwnerID = userID

	createdTask, err := h.services.TaskService.CreateTask(r.Context(), task)
	if err != nil {
		writeError(w, r, err, "error creating task")
		return
	}

	utils.WriteJSON(w, createdTask, http.StatusCreated)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	taskID, err := int64URLParam(r, "taskID")
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), taskID, userID)
	if err != nil {
		writeError(w, r, err, "error getting task")
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "error listing tasks")
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	taskID, err := int64URLParam(r, "taskID")
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	task.TaskID = taskID
	task.OwnerID = userID

	if err := h.services.TaskService.UpdateTask(r.Context(), task); err != nil {
		writeError(w, r, err, "error updating task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	taskID, err := int64URLParam(r, "taskID")
	if err != nil {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.DeleteTask(r.Context(), taskID, userID); err != nil {
		writeError(w, r, err, "error deleting task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
