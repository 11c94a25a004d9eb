package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ctforge/backend/auth"
	"github.com/ctforge/backend/httpjson"
)

func (httpserver *HttpServer) submitFlag(w http.ResponseWriter, r *http.Request) {
	type submitRequest struct {
		TaskID string `json:"task_id"`
		Flag   string `json:"flag"`
	}

	currentUser := auth.UserFromContext(r.Context())
	if currentUser == nil {
		httpjson.HandleError(slog.Default(), w, newErrUnauthorized())
		return
	}

	now := time.Now()
	if !httpserver.window.IsStarted(now, currentUser.IsAdmin) {
		httpjson.HandleError(slog.Default(), w, newErrMatchNotStarted())
		return
	}
	if !httpserver.window.IsNotEnded(now, currentUser.IsAdmin) {
		httpjson.HandleError(slog.Default(), w, newErrMatchEnded())
		return
	}

	var request submitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := httpserver.submSrvc.Submit(
		r.Context(), currentUser.UUID, request.TaskID, request.Flag)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	// both outcomes are successful executions; the payload tells them apart
	if !result.Correct {
		httpjson.WriteSuccessJson(w, map[string]any{
			"message": result.Message,
		})
		return
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"date": result.SolvedAt,
	})
}
