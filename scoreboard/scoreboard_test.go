package scoreboard_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ctforge/backend/scoreboard"
	"github.com/ctforge/backend/scoring"
	"github.com/ctforge/backend/tasksrvc"
	"github.com/ctforge/backend/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users *user.InMemUserRepo
	tasks *tasksrvc.InMemTaskRepo
	snaps *scoreboard.InMemSnapshotRepo
	board *scoreboard.Scoreboard

	matchStart time.Time
}

func setup(t *testing.T) *fixture {
	t.Helper()
	return setupWithCache(t, nil)
}

func setupWithCache(t *testing.T, cache scoreboard.SnapshotCache) *fixture {
	t.Helper()
	f := &fixture{
		users:      user.NewInMemUserRepo(),
		tasks:      tasksrvc.NewInMemTaskRepo(),
		snaps:      scoreboard.NewInMemSnapshotRepo(),
		matchStart: time.Date(2025, 10, 4, 10, 0, 0, 0, time.UTC),
	}
	f.board = scoreboard.NewScoreboard(
		f.users, f.tasks, f.snaps, cache,
		scoring.Config{Dynamic: true, MinPoints: 50, MaxPoints: 500},
		&f.matchStart,
	)
	return f
}

// memCache is a SnapshotCache over a single in-process slot.
type memCache struct {
	mu   sync.Mutex
	snap *scoreboard.Snapshot
	sets int
}

func (c *memCache) Get(ctx context.Context) (*scoreboard.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snap == nil {
		return nil, false
	}
	cp := *c.snap
	return &cp, true
}

func (c *memCache) Set(ctx context.Context, snap *scoreboard.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *snap
	c.snap = &cp
	c.sets++
}

func (c *memCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = nil
}

func (c *memCache) cached() *scoreboard.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

func (f *fixture) addUser(t *testing.T, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := f.users.Store(context.Background(), user.UserRow{UUID: id, Username: name})
	require.NoError(t, err)
	return id
}

func (f *fixture) addTask(t *testing.T, id string, basePoints float64) {
	t.Helper()
	err := f.tasks.Store(context.Background(), tasksrvc.Task{
		ID: id, Name: id, BasePoints: basePoints})
	require.NoError(t, err)
}

func (f *fixture) solve(t *testing.T, taskID string, userID uuid.UUID, offset time.Duration) {
	t.Helper()
	err := f.tasks.RecordSolve(context.Background(), taskID, userID, f.matchStart.Add(offset))
	require.NoError(t, err)
}

func entryOf(t *testing.T, snap *scoreboard.Snapshot, id uuid.UUID) scoreboard.Entry {
	t.Helper()
	for _, e := range snap.Entries {
		if e.UserUUID == id {
			return e
		}
	}
	t.Fatalf("no entry for user %s", id)
	return scoreboard.Entry{}
}

func TestRankingOrder(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	f.addUser(t, "carol")

	f.addTask(t, "web-01", 500)
	f.addTask(t, "pwn-01", 300)

	f.solve(t, "web-01", alice, 10*time.Minute)
	f.solve(t, "pwn-01", alice, 20*time.Minute)
	f.solve(t, "web-01", bob, 30*time.Minute)

	snap, err := f.board.Rebuild(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Entries, 3)

	assert.Equal(t, "alice", snap.Entries[0].Username)
	assert.Equal(t, 1, snap.Entries[0].Place)
	assert.Equal(t, "bob", snap.Entries[1].Username)
	assert.Equal(t, 2, snap.Entries[1].Place)
	assert.Equal(t, "carol", snap.Entries[2].Username)
	assert.Equal(t, 3, snap.Entries[2].Place)

	for i := 1; i < len(snap.Entries); i++ {
		assert.GreaterOrEqual(t,
			snap.Entries[i-1].TotalPoints, snap.Entries[i].TotalPoints)
	}
}

func TestTieBrokenByEarlierDateSum(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	early := f.addUser(t, "early")
	late := f.addUser(t, "late")

	f.addTask(t, "web-01", 500)
	f.addTask(t, "pwn-01", 500)

	// same totals, early's solves sum to a smaller offset from match start
	f.solve(t, "web-01", early, 5*time.Minute)
	f.solve(t, "pwn-01", early, 10*time.Minute)
	f.solve(t, "web-01", late, 40*time.Minute)
	f.solve(t, "pwn-01", late, 50*time.Minute)

	snap, err := f.board.Rebuild(ctx)
	require.NoError(t, err)

	a, b := entryOf(t, snap, early), entryOf(t, snap, late)
	require.Equal(t, a.TotalPoints, b.TotalPoints)
	assert.Less(t, a.DateSum, b.DateSum)
	assert.Less(t, a.Place, b.Place)
}

func TestRetroactiveDecay(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first := f.addUser(t, "first")
	f.addTask(t, "web-01", 500)
	f.solve(t, "web-01", first, time.Minute)

	snap, err := f.board.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500.0, entryOf(t, snap, first).TotalPoints,
		"sole solver earns the full base value")

	// four more competitors solve the same task
	for i := 0; i < 4; i++ {
		u := f.addUser(t, "late"+string(rune('a'+i)))
		f.solve(t, "web-01", u, time.Duration(i+2)*time.Minute)
	}

	snap, err = f.board.Rebuild(ctx)
	require.NoError(t, err)

	got := entryOf(t, snap, first)
	assert.Less(t, got.TotalPoints, 500.0,
		"first solver's points must shrink once the task has five solvers")
	assert.Greater(t, got.TotalPoints, 50.0)
	assert.InDelta(t, got.TotalPoints, got.SolvedTasks["web-01"].EffectivePoints, 1e-9)

	// every solver sees the same decayed value for the task
	for _, e := range snap.Entries {
		assert.Equal(t, got.SolvedTasks["web-01"].EffectivePoints,
			e.SolvedTasks["web-01"].EffectivePoints)
	}
}

func TestUsersWithoutSolvesAppearWithZeroPoints(t *testing.T) {
	f := setup(t)

	f.addUser(t, "idle")
	snap, err := f.board.Rebuild(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Entries, 1)
	assert.Equal(t, 0.0, snap.Entries[0].TotalPoints)
	assert.Empty(t, snap.Entries[0].SolvedTasks)
	assert.Equal(t, 1, snap.Entries[0].Place)
}

func TestGetLazilyCreatesEmptySnapshot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	snap, err := f.board.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)

	stored, err := f.snaps.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored, "first read must persist the empty snapshot")
}

func TestGetNeverRecomputes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	alice := f.addUser(t, "alice")
	f.addTask(t, "web-01", 500)

	_, err := f.board.Rebuild(ctx)
	require.NoError(t, err)

	// a solve lands but no rebuild runs: readers stay one solve behind
	f.solve(t, "web-01", alice, time.Minute)

	snap, err := f.board.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, entryOf(t, snap, alice).TotalPoints)

	_, err = f.board.Rebuild(ctx)
	require.NoError(t, err)

	snap, err = f.board.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500.0, entryOf(t, snap, alice).TotalPoints)
}

func TestGetServesFromCache(t *testing.T) {
	cache := &memCache{}
	f := setupWithCache(t, cache)
	ctx := context.Background()

	cached := &scoreboard.Snapshot{
		Version: 42,
		Entries: []scoreboard.Entry{{Username: "cached", Place: 1}},
	}
	cache.Set(ctx, cached)

	// the store is empty; anything but the cached copy means a fall-through
	snap, err := f.board.Get(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, "cached", snap.Entries[0].Username)
	assert.Equal(t, int64(42), snap.Version)

	stored, err := f.snaps.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored, "a cache hit must not touch the snapshot store")
}

func TestCacheMissFallsThroughAndRepopulates(t *testing.T) {
	cache := &memCache{}
	f := setupWithCache(t, cache)
	ctx := context.Background()

	f.addUser(t, "alice")
	_, err := f.board.Rebuild(ctx)
	require.NoError(t, err)
	require.Nil(t, cache.cached(), "rebuild leaves the cache invalidated")

	snap, err := f.board.Get(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Entries, 1)

	require.NotNil(t, cache.cached(), "a miss must repopulate the cache")
	assert.Equal(t, snap.Version, cache.cached().Version)
}

func TestRebuildInvalidatesCache(t *testing.T) {
	cache := &memCache{}
	f := setupWithCache(t, cache)
	ctx := context.Background()

	alice := f.addUser(t, "alice")
	f.addTask(t, "web-01", 500)

	_, err := f.board.Rebuild(ctx)
	require.NoError(t, err)

	// warm the cache with the zero-point board
	snap, err := f.board.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, entryOf(t, snap, alice).TotalPoints)
	require.NotNil(t, cache.cached())

	f.solve(t, "web-01", alice, time.Minute)
	_, err = f.board.Rebuild(ctx)
	require.NoError(t, err)
	require.Nil(t, cache.cached(), "rebuild must drop the stale cached copy")

	// the next read repopulates with the fresh standings
	snap, err = f.board.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500.0, entryOf(t, snap, alice).TotalPoints)
	assert.Equal(t, 500.0, entryOf(t, cache.cached(), alice).TotalPoints)
}

func TestStaleRebuildLosesToNewerSnapshot(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	newer := &scoreboard.Snapshot{Version: 100, Entries: []scoreboard.Entry{}}
	require.NoError(t, f.snaps.Put(ctx, newer))

	stale := &scoreboard.Snapshot{Version: 99, Entries: []scoreboard.Entry{{Username: "ghost"}}}
	require.NoError(t, f.snaps.Put(ctx, stale))

	got, err := f.snaps.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Version)
	assert.Empty(t, got.Entries)
}
