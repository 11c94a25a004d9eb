package tasksrvc

import (
	"fmt"
	"net/http"

	"github.com/ctforge/backend/srvcerror"
)

const ErrCodeTaskIdMissing = "task_id_missing"

func newErrTaskIdMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTaskIdMissing,
		"task id must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTaskNameMissing = "task_name_missing"

func newErrTaskNameMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTaskNameMissing,
		"task name must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeFlagMissing = "flag_missing"

func newErrFlagMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFlagMissing,
		"flag must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeBasePointsOutOfBounds = "base_points_out_of_bounds"

func newErrBasePointsOutOfBounds(min, max float64) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeBasePointsOutOfBounds,
		fmt.Sprintf("base points must be between %.0f and %.0f", min, max),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTaskExists = "task_exists"

func newErrTaskExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTaskExists,
		"a task with this id already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeTaskNotFound = "task_not_found"

func newErrTaskNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTaskNotFound,
		"task was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
