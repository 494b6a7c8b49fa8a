package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	authdomain "kidpoints/internal/domain/auth"
	tasksdomain "kidpoints/internal/domain/tasks"
	"kidpoints/internal/transport/httpserver/middleware"
)

type createTaskRequest struct {
	Title         string `json:"title"`
	Points        int    `json:"points"`
	AssignedKidID string `json:"assigned_kid_id"`
}

type taskResponse struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Points            int        `json:"points"`
	AssignedKidID     string     `json:"assigned_kid_id"`
	CreatedByParentID string     `json:"created_by_parent_id"`
	IsComplete        bool       `json:"is_complete"`
	CompletedAt       *time.Time `json:"completed_at"`
}

// ListTasks serves both roles: a kid sees only its own tasks, a parent either
// filters by an owned kid or defaults to tasks it created.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	var (
		tasks []tasksdomain.Task
		err   error
	)
	switch identity.Role {
	case authdomain.RoleKid:
		tasks, err = h.Tasks.ListForKid(r.Context(), identity.KidID)
	case authdomain.RoleParent:
		tasks, err = h.Tasks.ListForParent(r.Context(), identity.UserID, r.URL.Query().Get("kid_id"))
	default:
		writeError(w, http.StatusForbidden, "forbidden", "insufficient role")
		return
	}
	if err != nil {
		if errors.Is(err, tasksdomain.ErrUnknownKid) {
			h.log.BusinessError("tasks.list: unknown kid for parent", err, "parent_id", identity.UserID)
			writeError(w, http.StatusBadRequest, "unknown_kid", "unknown kid id for this parent")
			return
		}
		h.log.InternalError("tasks.list: list failed", err, "user_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, toTaskResponse(task))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	task, err := h.Tasks.Create(r.Context(), identity.UserID, tasksdomain.CreateInput{
		Title:         req.Title,
		Points:        req.Points,
		AssignedKidID: req.AssignedKidID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tasksdomain.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		case errors.Is(err, tasksdomain.ErrInvalidPoints):
			writeError(w, http.StatusBadRequest, "invalid_request", "points must be non-negative")
		case errors.Is(err, tasksdomain.ErrUnknownKid):
			h.log.BusinessError("tasks.create: unknown kid for parent", err, "parent_id", identity.UserID, "kid_id", req.AssignedKidID)
			writeError(w, http.StatusBadRequest, "unknown_kid", "unknown kid id for this parent")
		default:
			h.log.InternalError("tasks.create: create failed", err, "parent_id", identity.UserID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(*task))
}

func (h *Handlers) CompleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseTaskID(chi.URLParam(r, "task_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid task id")
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	task, err := h.Tasks.Complete(r.Context(), taskID, identity.KidID)
	if err != nil {
		if errors.Is(err, tasksdomain.ErrTaskNotFound) {
			h.log.BusinessError("tasks.complete: task not found for kid", err, "kid_id", identity.KidID, "task_id", taskID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
			return
		}
		h.log.InternalError("tasks.complete: complete failed", err, "kid_id", identity.KidID, "task_id", taskID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*task))
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseTaskID(chi.URLParam(r, "task_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid task id")
		return
	}

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Tasks.Delete(r.Context(), taskID, identity.UserID); err != nil {
		if errors.Is(err, tasksdomain.ErrTaskNotFound) {
			h.log.BusinessError("tasks.delete: task not found for parent", err, "parent_id", identity.UserID, "task_id", taskID)
			writeError(w, http.StatusNotFound, "task_not_found", "task not found")
			return
		}
		h.log.InternalError("tasks.delete: delete failed", err, "parent_id", identity.UserID, "task_id", taskID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseTaskID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

func toTaskResponse(task tasksdomain.Task) taskResponse {
	return taskResponse{
		ID:                task.ID,
		Title:             task.Title,
		Points:            task.Points,
		AssignedKidID:     task.AssignedKidID,
		CreatedByParentID: task.CreatedByParentID,
		IsComplete:        task.IsComplete,
		CompletedAt:       task.CompletedAt,
	}
}
