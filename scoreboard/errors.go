package scoreboard

import "github.com/ctforge/backend/srvcerror"

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
