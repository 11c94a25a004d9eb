package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ctforge/backend/httpjson"
	"github.com/ctforge/backend/scoreboard"
)

type scoreboardEntry struct {
	UserUUID    string                `json:"user_uuid"`
	Username    string                `json:"username"`
	TotalPoints float64               `json:"total_points"`
	Place       int                   `json:"place"`
	SolvedTasks map[string]solvedTask `json:"solved_tasks"`
}

type solvedTask struct {
	Name            string    `json:"name"`
	Tags            []string  `json:"tags"`
	EffectivePoints float64   `json:"effective_points"`
	SolvedAt        time.Time `json:"solved_at"`
}

func (httpserver *HttpServer) getScoreboard(w http.ResponseWriter, r *http.Request) {
	snap, err := httpserver.board.Get(r.Context())
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	entries := make([]scoreboardEntry, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		entries = append(entries, mapEntry(e))
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"entries": entries,
	})
}

func mapEntry(e scoreboard.Entry) scoreboardEntry {
	solved := make(map[string]solvedTask, len(e.SolvedTasks))
	for taskID, st := range e.SolvedTasks {
		solved[taskID] = solvedTask{
			Name:            st.Name,
			Tags:            st.Tags,
			EffectivePoints: st.EffectivePoints,
			SolvedAt:        st.SolvedAt,
		}
	}
	return scoreboardEntry{
		UserUUID:    e.UserUUID.String(),
		Username:    e.Username,
		TotalPoints: e.TotalPoints,
		Place:       e.Place,
		SolvedTasks: solved,
	}
}
