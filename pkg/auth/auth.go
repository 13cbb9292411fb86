package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleAdmin    = "admin"
	RoleBorrower = "peminjam"
)

var JWTKey = []byte("borrowing-service-key")

// Actor is the authenticated user an operation runs on behalf of.
// It is set by the JWT middleware and threaded explicitly through
// every service call; there is no ambient current-user state.
type Actor struct {
	ID   int64
	Name string
	Role string
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

type Profile struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	jwt.RegisteredClaims
	Profile Profile `json:"profile"`
}

type actorKey struct{}

var ErrNoActor = errors.New("no actor in context")

func SetActorContext(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	if !ok {
		return Actor{}, ErrNoActor
	}
	return actor, nil
}
