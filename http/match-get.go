package http

import (
	"net/http"
	"time"

	"github.com/ctforge/backend/auth"
	"github.com/ctforge/backend/httpjson"
)

func (httpserver *HttpServer) getMatchStatus(w http.ResponseWriter, r *http.Request) {
	isAdmin := false
	if currentUser := auth.UserFromContext(r.Context()); currentUser != nil {
		isAdmin = currentUser.IsAdmin
	}

	now := time.Now()
	httpjson.WriteSuccessJson(w, map[string]any{
		"started": httpserver.window.IsStarted(now, isAdmin),
		"ended":   !httpserver.window.IsNotEnded(now, isAdmin),
	})
}
