package tasksrvc

import (
	"context"

	"github.com/ctforge/backend/scoring"
)

type TaskSrvc struct {
	repo    TaskRepo
	flagKey []byte
	scoring scoring.Config
}

func NewTaskSrvc(repo TaskRepo, flagKey []byte, scoringCfg scoring.Config) *TaskSrvc {
	return &TaskSrvc{
		repo:    repo,
		flagKey: flagKey,
		scoring: scoringCfg,
	}
}

func (s *TaskSrvc) GetTask(ctx context.Context, id string) (*Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	return task, nil
}

// TaskView is the competitor-facing listing entry. The flag hash never
// leaves the service.
type TaskView struct {
	ID              string
	Name            string
	Tags            []string
	EffectivePoints float64
	SolverCount     int
}

// ListTasks returns all tasks with their current effective value, which
// already reflects the live solver count.
func (s *TaskSrvc) ListTasks(ctx context.Context) ([]TaskView, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, TaskView{
			ID:              t.ID,
			Name:            t.Name,
			Tags:            t.Tags,
			EffectivePoints: scoring.EffectivePoints(s.scoring, t.BasePoints, t.SolverCount()),
			SolverCount:     t.SolverCount(),
		})
	}
	return views, nil
}
