package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	todosdomain "kidpoints/internal/domain/todos"
)

type todoRequest struct {
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
}

type todoResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
}

func (h *Handlers) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.Todos.List(r.Context())
	if err != nil {
		h.log.InternalError("todos.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]todoResponse, 0, len(todos))
	for _, todo := range todos {
		response = append(response, todoResponse{ID: todo.ID, Title: todo.Title, IsDone: todo.IsDone})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req todoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	todo, err := h.Todos.Create(r.Context(), req.Title)
	if err != nil {
		if errors.Is(err, todosdomain.ErrTitleRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
			return
		}
		h.log.InternalError("todos.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, todoResponse{ID: todo.ID, Title: todo.Title, IsDone: todo.IsDone})
}

func (h *Handlers) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := strconv.ParseInt(chi.URLParam(r, "todo_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid todo id")
		return
	}

	var req todoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	todo, err := h.Todos.Update(r.Context(), todoID, req.Title, req.IsDone)
	if err != nil {
		switch {
		case errors.Is(err, todosdomain.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		case errors.Is(err, todosdomain.ErrTodoNotFound):
			writeError(w, http.StatusNotFound, "todo_not_found", "todo not found")
		default:
			h.log.InternalError("todos.update: update failed", err, "todo_id", todoID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, todoResponse{ID: todo.ID, Title: todo.Title, IsDone: todo.IsDone})
}

func (h *Handlers) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := strconv.ParseInt(chi.URLParam(r, "todo_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid todo id")
		return
	}

	if err := h.Todos.Delete(r.Context(), todoID); err != nil {
		if errors.Is(err, todosdomain.ErrTodoNotFound) {
			writeError(w, http.StatusNotFound, "todo_not_found", "todo not found")
			return
		}
		h.log.InternalError("todos.delete: delete failed", err, "todo_id", todoID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
