package http

import (
	"net/http"

	"github.com/ctforge/backend/srvcerror"
)

const ErrCodeUnauthorized = "unauthorized"

func newErrUnauthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnauthorized,
		"authentication required",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeAdminOnly = "admin_only"

func newErrAdminOnly() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAdminOnly,
		"administrator access required",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeMatchNotStarted = "match_not_started"

func newErrMatchNotStarted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMatchNotStarted,
		"the match has not started yet",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeMatchEnded = "match_ended"

func newErrMatchEnded() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMatchEnded,
		"the match has ended",
	).SetHttpStatusCode(http.StatusForbidden)
}
