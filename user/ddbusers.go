package user

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

type ddbUserRow struct {
	Uuid      string `dynamo:"uuid,hash"` // primary key
	Username  string `dynamo:"username"`
	BcryptPwd []byte `dynamo:"bcrypt_pwd,omitempty"`
	IsAdmin   bool   `dynamo:"is_admin,omitempty"`
}

// Username uniqueness is enforced with a guard row keyed uname#<name>.
// Registration first claims the guard with a conditional put; only the
// winner of a race gets to write the user row.
const unameGuardPrefix = "uname#"

// DdbUserRepo stores users in a DynamoDB table keyed by uuid.
type DdbUserRepo struct {
	table dynamo.Table
}

func NewDdbUserRepo(ddbClient *dynamodb.Client, tableName string) *DdbUserRepo {
	db := dynamo.NewFromIface(ddbClient)
	return &DdbUserRepo{table: db.Table(tableName)}
}

func (r *DdbUserRepo) Store(ctx context.Context, row UserRow) error {
	guard := ddbUserRow{
		Uuid:     unameGuardPrefix + row.Username,
		Username: row.Username,
	}
	err := r.table.Put(guard).If("attribute_not_exists(uuid)").Run(ctx)
	if dynamo.IsCondCheckFailed(err) {
		return ErrUsernameTaken
	}
	if err != nil {
		return err
	}

	item := ddbUserRow{
		Uuid:      row.UUID.String(),
		Username:  row.Username,
		BcryptPwd: row.BcryptPwd,
		IsAdmin:   row.IsAdmin,
	}
	return r.table.Put(item).Run(ctx)
}

func (r *DdbUserRepo) Get(ctx context.Context, id uuid.UUID) (*UserRow, error) {
	var item ddbUserRow
	err := r.table.Get("uuid", id.String()).One(ctx, &item)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return item.toRow()
}

func (r *DdbUserRepo) List(ctx context.Context) ([]UserRow, error) {
	var items []ddbUserRow
	if err := r.table.Scan().All(ctx, &items); err != nil {
		return nil, err
	}
	rows := make([]UserRow, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(item.Uuid, unameGuardPrefix) {
			continue
		}
		row, err := item.toRow()
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}
	return rows, nil
}

func (item ddbUserRow) toRow() (*UserRow, error) {
	id, err := uuid.Parse(item.Uuid)
	if err != nil {
		return nil, err
	}
	return &UserRow{
		UUID:      id,
		Username:  item.Username,
		BcryptPwd: item.BcryptPwd,
		IsAdmin:   item.IsAdmin,
	}, nil
}
