package tokens

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/metriport/ehr-sync/sources"
)

// JwtToken is an opaque bearer-token record. Lookups by (token, source) are
// exact matches and never evaluate Exp themselves; expiry is the caller's
// responsibility.
type JwtToken struct {
	Id     *primitive.ObjectID    `bson:"_id,omitempty"`
	Token  string                 `bson:"token"`
	Source sources.Source         `bson:"source"`
	Exp    time.Time              `bson:"exp"`
	Data   map[string]interface{} `bson:"data,omitempty"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./tokens.go -destination=./test/mock_repository.go -package test Repository

type Repository interface {
	// FindOrCreate persists the token unless a record for (token, source)
	// already exists, in which case the first writer's record wins.
	FindOrCreate(ctx context.Context, token JwtToken) (*JwtToken, error)
	Get(ctx context.Context, token string, source sources.Source) (*JwtToken, error)
	// UpdateExpiration rewrites the expiry. Callers only ever shorten it.
	UpdateExpiration(ctx context.Context, id string, exp time.Time) error
	// DeleteBySourceAndData sweeps tokens of a source whose payload matches
	// the given fields and whose expiry is before the cutoff.
	DeleteBySourceAndData(ctx context.Context, source sources.Source, data map[string]interface{}, expiredBefore time.Time) (int64, error)
}
