// Package submsrvc verifies flag submissions and records solves.
package submsrvc

import (
	"github.com/ctforge/backend/scoreboard"
	"github.com/ctforge/backend/tasksrvc"
)

type SubmSrvc struct {
	tasks   tasksrvc.TaskRepo
	board   *scoreboard.Scoreboard
	flagKey []byte
}

func NewSubmSrvc(tasks tasksrvc.TaskRepo, board *scoreboard.Scoreboard, flagKey []byte) *SubmSrvc {
	return &SubmSrvc{
		tasks:   tasks,
		board:   board,
		flagKey: flagKey,
	}
}
