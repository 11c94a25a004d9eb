package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/ctforge/backend/auth"
	"github.com/ctforge/backend/matchwin"
	"github.com/ctforge/backend/scoreboard"
	"github.com/ctforge/backend/submsrvc"
	"github.com/ctforge/backend/tasksrvc"
	"github.com/ctforge/backend/user"
)

type HttpServer struct {
	userSrvc *user.UserSrvc
	taskSrvc *tasksrvc.TaskSrvc
	submSrvc *submsrvc.SubmSrvc
	board    *scoreboard.Scoreboard
	window   matchwin.Window
	jwtKey   []byte
	router   *chi.Mux
}

func NewHttpServer(
	userSrvc *user.UserSrvc,
	taskSrvc *tasksrvc.TaskSrvc,
	submSrvc *submsrvc.SubmSrvc,
	board *scoreboard.Scoreboard,
	window matchwin.Window,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("ctforge", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		userSrvc: userSrvc,
		taskSrvc: taskSrvc,
		submSrvc: submSrvc,
		board:    board,
		window:   window,
		jwtKey:   jwtKey,
		router:   router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Handler exposes the router; tests drive it through httptest.
func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/submissions", httpserver.submitFlag)
	r.Get("/scoreboard", httpserver.getScoreboard)
	r.Get("/match", httpserver.getMatchStatus)
	r.Get("/tasks", httpserver.listTasks)
	r.Post("/tasks", httpserver.createTask)
	r.Delete("/tasks/{taskId}", httpserver.deleteTask)
	r.Post("/auth/login", httpserver.authLogin)
	r.Post("/auth/register", httpserver.authRegister)
}
