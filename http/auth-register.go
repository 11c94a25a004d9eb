package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ctforge/backend/httpjson"
	"github.com/ctforge/backend/user"
)

func (httpserver *HttpServer) authRegister(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	type registerResponse struct {
		UUID     string `json:"uuid"`
		Username string `json:"username"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := httpserver.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Username: request.Username,
		Password: request.Password,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := registerResponse{
		UUID:     created.UUID.String(),
		Username: created.Username,
	}

	httpjson.WriteSuccessJson(w, response)
}
