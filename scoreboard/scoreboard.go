// Package scoreboard materializes the ranked competition standings.
//
// The builder is a pure function of durable state: it loads every user and
// every task, prices each solve at the task's current solver count and
// replaces the stored snapshot wholesale. Readers only ever see the last
// stored snapshot; nothing is recomputed on the read path.
package scoreboard

import (
	"context"
	"sort"
	"time"

	"github.com/ctforge/backend/logger"
	"github.com/ctforge/backend/scoring"
	"github.com/ctforge/backend/tasksrvc"
	"github.com/ctforge/backend/user"
)

type Scoreboard struct {
	users user.UserRepo
	tasks tasksrvc.TaskRepo
	snaps SnapshotRepo
	cache SnapshotCache // optional

	scoring    scoring.Config
	matchStart *time.Time
}

func NewScoreboard(
	users user.UserRepo,
	tasks tasksrvc.TaskRepo,
	snaps SnapshotRepo,
	cache SnapshotCache,
	scoringCfg scoring.Config,
	matchStart *time.Time,
) *Scoreboard {
	return &Scoreboard{
		users:      users,
		tasks:      tasks,
		snaps:      snaps,
		cache:      cache,
		scoring:    scoringCfg,
		matchStart: matchStart,
	}
}

// Rebuild recomputes the whole scoreboard from the user and task stores and
// overwrites the stored snapshot. It is idempotent: two overlapping rebuilds
// produce equally correct snapshots and the version stamp decides which one
// the store keeps.
func (s *Scoreboard) Rebuild(ctx context.Context) (*Snapshot, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entry := Entry{
			UserUUID:    u.UUID,
			Username:    u.Username,
			SolvedTasks: make(map[string]SolvedTask),
		}
		for i := range tasks {
			t := &tasks[i]
			solve, ok := t.SolveBy(u.UUID)
			if !ok {
				continue
			}
			pts := scoring.EffectivePoints(s.scoring, t.BasePoints, t.SolverCount())
			entry.TotalPoints += pts
			if s.matchStart != nil {
				entry.DateSum += solve.At.Sub(*s.matchStart).Seconds()
			}
			entry.SolvedTasks[t.ID] = SolvedTask{
				Name:            t.Name,
				Tags:            t.Tags,
				EffectivePoints: pts,
				SolvedAt:        solve.At,
			}
		}
		entries = append(entries, entry)
	}

	rank(entries)

	snap := &Snapshot{
		Version:   time.Now().UnixNano(),
		Entries:   entries,
		UpdatedAt: time.Now(),
	}

	if err := s.snaps.Put(ctx, snap); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	logger.FromContext(ctx).Info("scoreboard rebuilt",
		"entries", len(entries), "version", snap.Version)

	return snap, nil
}

// Get serves the last stored snapshot, lazily creating an empty one on the
// first read after deployment. It never rebuilds: a reader may see a
// snapshot one solve behind an in-flight submission.
func (s *Scoreboard) Get(ctx context.Context) (*Snapshot, error) {
	if s.cache != nil {
		if snap, ok := s.cache.Get(ctx); ok {
			return snap, nil
		}
	}

	snap, err := s.snaps.Get(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if snap == nil {
		// Version 0 so the lazy placeholder can never displace a
		// snapshot written by a concurrent rebuild.
		snap = &Snapshot{Version: 0, Entries: []Entry{}, UpdatedAt: time.Now()}
		if err := s.snaps.Put(ctx, snap); err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
	}

	if s.cache != nil {
		s.cache.Set(ctx, snap)
	}
	return snap, nil
}

// rank sorts by total points descending, breaking ties by the smaller
// dateSum (the sum of solve offsets from match start, so earlier solves
// win). Username is a final tie-break so ordering is deterministic.
func rank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.DateSum != b.DateSum {
			return a.DateSum < b.DateSum
		}
		return a.Username < b.Username
	})
	for i := range entries {
		entries[i].Place = i + 1
	}
}
