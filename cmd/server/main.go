package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ctforge/backend/conf"
	"github.com/ctforge/backend/http"
	"github.com/ctforge/backend/scoreboard"
	"github.com/ctforge/backend/submsrvc"
	"github.com/ctforge/backend/tasksrvc"
	"github.com/ctforge/backend/user"
)

func main() {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	cfg, err := conf.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		slog.Error("unable to load AWS SDK config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	userRepo := user.NewDdbUserRepo(ddbClient, cfg.UserTable)
	taskRepo := tasksrvc.NewDdbTaskRepo(ddbClient, cfg.TaskTable)
	snapRepo := scoreboard.NewDdbSnapshotRepo(ddbClient, cfg.ScoreboardTable)

	var cache scoreboard.SnapshotCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cache = scoreboard.NewRedisCache(rdb)
	}

	board := scoreboard.NewScoreboard(
		userRepo, taskRepo, snapRepo, cache, cfg.Scoring, cfg.Window.Start)
	userSrvc := user.NewUserSrvc(userRepo)
	taskSrvc := tasksrvc.NewTaskSrvc(taskRepo, cfg.FlagHmacKey, cfg.Scoring)
	submSrvc := submsrvc.NewSubmSrvc(taskRepo, board, cfg.FlagHmacKey)

	httpServer := http.NewHttpServer(
		userSrvc, taskSrvc, submSrvc, board, cfg.Window, cfg.JwtKey)

	log.Printf("Starting server on %s", cfg.HttpAddress)
	err = httpServer.Start(cfg.HttpAddress)
	log.Printf("Server stopped with error: %v", err)
}
