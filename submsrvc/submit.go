package submsrvc

import (
	"context"
	"errors"
	"time"

	"github.com/ctforge/backend/logger"
	"github.com/ctforge/backend/tasksrvc"
	"github.com/google/uuid"
)

// SubmitResult is the outcome of a submission that executed. A wrong flag
// is a result, not an error: the request succeeded, the flag just didn't
// match, and the client must be able to tell the two apart.
type SubmitResult struct {
	Correct  bool
	Message  string    // set when the flag was wrong
	SolvedAt time.Time // set when the flag was accepted
}

// Submit verifies a candidate flag and, if correct, records the solve and
// rebuilds the scoreboard before returning so the submitter immediately
// sees their own update. The caller is responsible for the match-window
// gate.
func (s *SubmSrvc) Submit(ctx context.Context, userUUID uuid.UUID, taskID string, flag string) (*SubmitResult, error) {
	log := logger.FromContext(ctx).With("user", userUUID, "task", taskID)

	if taskID == "" {
		return nil, newErrTaskIdMissing()
	}
	if tasksrvc.NormalizeFlag(flag) == "" {
		return nil, newErrFlagMissing()
	}

	task, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if task == nil {
		return nil, newErrTaskNotFound()
	}

	if _, solved := task.SolveBy(userUUID); solved {
		return nil, newErrAlreadySolved()
	}

	if !tasksrvc.FlagMatches(s.flagKey, flag, task.FlagHmac) {
		log.Info("flag rejected")
		return &SubmitResult{Correct: false, Message: "Flag is invalid"}, nil
	}

	now := time.Now()
	err = s.tasks.RecordSolve(ctx, task.ID, userUUID, now)
	if errors.Is(err, tasksrvc.ErrSolveExists) {
		// lost the race against a concurrent submission by the same user;
		// the earlier one is the solve of record
		return nil, newErrAlreadySolved()
	}
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	log.Info("flag accepted", "solved_at", now)

	// The solve is durable at this point. A failed rebuild only leaves the
	// snapshot one solve behind until the next successful rebuild, so it is
	// logged rather than surfaced to the submitter.
	if s.board != nil {
		if _, err := s.board.Rebuild(ctx); err != nil {
			log.Error("scoreboard rebuild after solve failed", "error", err)
		}
	}

	return &SubmitResult{Correct: true, SolvedAt: now}, nil
}
