package tasksrvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// Tasks live in one DynamoDB table under a composite key:
//
//	pk = task#<id>, sk = details#        the task document
//	pk = task#<id>, sk = solve#<uuid>    one row per recorded solve
//
// Keeping solves as separate rows is what makes solve recording a single
// conditional put instead of a read-modify-write of the task document.
type ddbTaskItem struct {
	Pk string `dynamo:"pk,hash"`
	Sk string `dynamo:"sk,range"`

	// details# attributes
	TaskID     string   `dynamo:"task_id,omitempty"`
	Name       string   `dynamo:"name,omitempty"`
	BasePoints float64  `dynamo:"base_points,omitempty"`
	FlagHmac   string   `dynamo:"flag_hmac,omitempty"`
	Tags       []string `dynamo:"tags,omitempty"`

	// solve# attributes
	UserUUID string     `dynamo:"user_uuid,omitempty"`
	SolvedAt *time.Time `dynamo:"solved_at,omitempty"`
}

const (
	taskPkPrefix  = "task#"
	detailsSk     = "details#"
	solveSkPrefix = "solve#"
)

func taskPk(id string) string {
	return taskPkPrefix + id
}

func solveSk(id uuid.UUID) string {
	return solveSkPrefix + id.String()
}

type DdbTaskRepo struct {
	table dynamo.Table
}

func NewDdbTaskRepo(ddbClient *dynamodb.Client, tableName string) *DdbTaskRepo {
	db := dynamo.NewFromIface(ddbClient)
	return &DdbTaskRepo{table: db.Table(tableName)}
}

func (r *DdbTaskRepo) Store(ctx context.Context, task Task) error {
	item := ddbTaskItem{
		Pk:         taskPk(task.ID),
		Sk:         detailsSk,
		TaskID:     task.ID,
		Name:       task.Name,
		BasePoints: task.BasePoints,
		FlagHmac:   task.FlagHmac,
		Tags:       task.Tags,
	}
	err := r.table.Put(item).If("attribute_not_exists(pk)").Run(ctx)
	if dynamo.IsCondCheckFailed(err) {
		return ErrTaskExists
	}
	return err
}

func (r *DdbTaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	var items []ddbTaskItem
	err := r.table.Get("pk", taskPk(id)).All(ctx, &items)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	task, err := assembleTask(items)
	if err != nil {
		return nil, err
	}
	if task == nil {
		// solve rows without a details row; treat the task as gone
		return nil, nil
	}
	return task, nil
}

func (r *DdbTaskRepo) List(ctx context.Context) ([]Task, error) {
	var items []ddbTaskItem
	if err := r.table.Scan().All(ctx, &items); err != nil {
		return nil, err
	}

	byPk := make(map[string][]ddbTaskItem)
	for _, item := range items {
		byPk[item.Pk] = append(byPk[item.Pk], item)
	}

	tasks := make([]Task, 0, len(byPk))
	for _, group := range byPk {
		task, err := assembleTask(group)
		if err != nil {
			return nil, err
		}
		if task != nil {
			tasks = append(tasks, *task)
		}
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *DdbTaskRepo) Delete(ctx context.Context, id string) error {
	var items []ddbTaskItem
	if err := r.table.Get("pk", taskPk(id)).All(ctx, &items); err != nil {
		return err
	}
	for _, item := range items {
		err := r.table.Delete("pk", item.Pk).Range("sk", item.Sk).Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

// RecordSolve is the store-side idempotence guard: the conditional put
// succeeds only when no solve row exists yet for this (task, user) pair,
// so racing submissions resolve to exactly one recorded solve.
func (r *DdbTaskRepo) RecordSolve(ctx context.Context, taskID string, userUUID uuid.UUID, at time.Time) error {
	item := ddbTaskItem{
		Pk:       taskPk(taskID),
		Sk:       solveSk(userUUID),
		UserUUID: userUUID.String(),
		SolvedAt: &at,
	}
	err := r.table.Put(item).If("attribute_not_exists(sk)").Run(ctx)
	if dynamo.IsCondCheckFailed(err) {
		return ErrSolveExists
	}
	return err
}

func assembleTask(items []ddbTaskItem) (*Task, error) {
	var task *Task
	solves := make([]Solve, 0, len(items))

	for _, item := range items {
		switch {
		case item.Sk == detailsSk:
			task = &Task{
				ID:         item.TaskID,
				Name:       item.Name,
				BasePoints: item.BasePoints,
				FlagHmac:   item.FlagHmac,
				Tags:       item.Tags,
			}
		case strings.HasPrefix(item.Sk, solveSkPrefix):
			id, err := uuid.Parse(item.UserUUID)
			if err != nil {
				return nil, fmt.Errorf("bad solve row %q/%q: %w", item.Pk, item.Sk, err)
			}
			if item.SolvedAt == nil {
				return nil, fmt.Errorf("solve row %q/%q has no timestamp", item.Pk, item.Sk)
			}
			solves = append(solves, Solve{UserUUID: id, At: *item.SolvedAt})
		}
	}

	if task == nil {
		return nil, nil
	}
	sort.Slice(solves, func(i, j int) bool { return solves[i].At.Before(solves[j].At) })
	task.Solves = solves
	return task, nil
}
