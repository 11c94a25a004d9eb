package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ctforge/backend/auth"
	"github.com/ctforge/backend/httpjson"
	"github.com/ctforge/backend/tasksrvc"
)

func (httpserver *HttpServer) createTask(w http.ResponseWriter, r *http.Request) {
	type createTaskRequest struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		BasePoints float64  `json:"base_points"`
		Flag       string   `json:"flag"`
		Tags       []string `json:"tags"`
	}

	currentUser := auth.UserFromContext(r.Context())
	if currentUser == nil {
		httpjson.HandleError(slog.Default(), w, newErrUnauthorized())
		return
	}
	if !currentUser.IsAdmin {
		httpjson.HandleError(slog.Default(), w, newErrAdminOnly())
		return
	}

	var request createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	task, err := httpserver.taskSrvc.CreateTask(r.Context(), tasksrvc.CreateTaskParams{
		ID:         request.ID,
		Name:       request.Name,
		BasePoints: request.BasePoints,
		Flag:       request.Flag,
		Tags:       request.Tags,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"id":   task.ID,
		"name": task.Name,
	})
}

func (httpserver *HttpServer) deleteTask(w http.ResponseWriter, r *http.Request) {
	currentUser := auth.UserFromContext(r.Context())
	if currentUser == nil {
		httpjson.HandleError(slog.Default(), w, newErrUnauthorized())
		return
	}
	if !currentUser.IsAdmin {
		httpjson.HandleError(slog.Default(), w, newErrAdminOnly())
		return
	}

	taskID := chi.URLParam(r, "taskId")
	if err := httpserver.taskSrvc.DeleteTask(r.Context(), taskID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, nil)
}
