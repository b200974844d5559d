package interfaces

import "context"

// SetCache is a set-membership cache. Each operation is atomic on the
// server side, so one client is shared by all requests.
type SetCache interface {
	SIsMember(ctx context.Context, set, member string) (bool, error)
	SAdd(ctx context.Context, set, member string) error
	SRem(ctx context.Context, set, member string) error
}
