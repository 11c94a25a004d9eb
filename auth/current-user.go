package auth

import (
	"context"

	"github.com/google/uuid"
)

// CurrentUser is the authenticated requester as the rest of the backend
// sees it. Handlers receive it from the context; a nil value means the
// request carried no (valid) token.
type CurrentUser struct {
	UUID     uuid.UUID
	Username string
	IsAdmin  bool
}

// UserFromContext extracts the current user from JWT claims placed in the
// context by the auth middleware. Returns nil for anonymous requests and
// for tokens whose uuid claim does not parse.
func UserFromContext(ctx context.Context) *CurrentUser {
	claims, ok := ctx.Value(CtxJwtClaimsKey).(*JwtClaims)
	if !ok || claims == nil {
		return nil
	}
	id, err := uuid.Parse(claims.UUID)
	if err != nil {
		return nil
	}
	return &CurrentUser{
		UUID:     id,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}
}
