package submsrvc

import (
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

const ErrCodeFlagMissing = "flag_missing"

func newErrFlagMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFlagMissing,
		"flag must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTaskNotFound = "task_not_found"

func newErrTaskNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTaskNotFound,
		"task was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAlreadySolved = "already_solved"

func newErrAlreadySolved() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadySolved,
		"you have already solved this task",
	).SetHttpStatusCode(http.StatusConflict)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
