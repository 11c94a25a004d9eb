package tasksrvc

import (
	"context"
	"errors"
)

type CreateTaskParams struct {
	ID         string
	Name       string
	BasePoints float64
	Flag       string // plaintext; hashed before storage, never persisted
	Tags       []string
}

// CreateTask registers a new challenge. The plaintext flag is hashed with
// the deployment secret here and discarded.
func (s *TaskSrvc) CreateTask(ctx context.Context, p CreateTaskParams) (*Task, error) {
	if p.ID == "" {
		return nil, newErrTaskIdMissing()
	}
	if p.Name == "" {
		return nil, newErrTaskNameMissing()
	}
	if NormalizeFlag(p.Flag) == "" {
		return nil, newErrFlagMissing()
	}
	if !s.scoring.ValidBasePoints(p.BasePoints) {
		return nil, newErrBasePointsOutOfBounds(s.scoring.MinPoints, s.scoring.MaxPoints)
	}

	task := Task{
		ID:         p.ID,
		Name:       p.Name,
		BasePoints: p.BasePoints,
		FlagHmac:   HashFlag(s.flagKey, p.Flag),
		Tags:       p.Tags,
	}

	// the store decides id uniqueness; racing creates resolve to one task
	if err := s.repo.Store(ctx, task); err != nil {
		if errors.Is(err, ErrTaskExists) {
			return nil, newErrTaskExists()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	return &task, nil
}

func (s *TaskSrvc) DeleteTask(ctx context.Context, id string) error {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return newErrInternalSE().SetDebug(err)
	}
	if task == nil {
		return newErrTaskNotFound()
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return newErrInternalSE().SetDebug(err)
	}
	return nil
}
