package metadata

import (
	"context"
)

// Repository mirrors the getItem/setItem/removeItem storage API the session
// layer is written against. Values are opaque strings.
//
// GetItem reports found=false for a missing key. RemoveItem of a missing key
// is not an error.
type Repository interface {
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	AllKeys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}
