package scoreboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// The snapshot is a single DynamoDB item. Entries are stored as one JSON
// blob: the document is only ever written and read whole.
type ddbSnapshotRow struct {
	Id          string    `dynamo:"id,hash"`
	Version     int64     `dynamo:"version"`
	EntriesJson []byte    `dynamo:"entries_json"`
	UpdatedAt   time.Time `dynamo:"updated_at"`
}

const snapshotDocId = "scoreboard"

type DdbSnapshotRepo struct {
	table dynamo.Table
}

func NewDdbSnapshotRepo(ddbClient *dynamodb.Client, tableName string) *DdbSnapshotRepo {
	db := dynamo.NewFromIface(ddbClient)
	return &DdbSnapshotRepo{table: db.Table(tableName)}
}

func (r *DdbSnapshotRepo) Get(ctx context.Context) (*Snapshot, error) {
	var row ddbSnapshotRow
	err := r.table.Get("id", snapshotDocId).One(ctx, &row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(row.EntriesJson, &entries); err != nil {
		return nil, err
	}
	return &Snapshot{
		Version:   row.Version,
		Entries:   entries,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// Put overwrites the snapshot document unless the stored one carries a
// higher version stamp, which makes overlapping rebuilds last-writer-wins
// without any locking.
func (r *DdbSnapshotRepo) Put(ctx context.Context, snap *Snapshot) error {
	entriesJson, err := json.Marshal(snap.Entries)
	if err != nil {
		return err
	}
	row := ddbSnapshotRow{
		Id:          snapshotDocId,
		Version:     snap.Version,
		EntriesJson: entriesJson,
		UpdatedAt:   snap.UpdatedAt,
	}
	err = r.table.Put(row).
		If("attribute_not_exists(id) OR version <= ?", snap.Version).
		Run(ctx)
	if dynamo.IsCondCheckFailed(err) {
		// a strictly newer snapshot is already in place
		return nil
	}
	return err
}
