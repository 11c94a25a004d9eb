package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ctforge/backend/auth"
	"github.com/ctforge/backend/httpjson"
)

type taskListItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tags        []string `json:"tags"`
	Points      float64  `json:"points"`
	SolverCount int      `json:"solver_count"`
}

// Browsing only requires the match to have started; tasks stay visible
// after it ends.
func (httpserver *HttpServer) listTasks(w http.ResponseWriter, r *http.Request) {
	isAdmin := false
	if currentUser := auth.UserFromContext(r.Context()); currentUser != nil {
		isAdmin = currentUser.IsAdmin
	}

	if !httpserver.window.IsStarted(time.Now(), isAdmin) {
		httpjson.HandleError(slog.Default(), w, newErrMatchNotStarted())
		return
	}

	views, err := httpserver.taskSrvc.ListTasks(r.Context())
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	items := make([]taskListItem, 0, len(views))
	for _, v := range views {
		items = append(items, taskListItem{
			ID:          v.ID,
			Name:        v.Name,
			Tags:        v.Tags,
			Points:      v.EffectivePoints,
			SolverCount: v.SolverCount,
		})
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"tasks": items,
	})
}
