// Package storage provides the durable key-value stores the watchlist is
// mirrored to.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store is a string key-value store. Read reports found=false for an
// unknown key. Write overwrites any previous value.
type Store interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key, value string) error
	Close() error
}

// ErrInvalidKey is returned for keys that cannot be stored
var ErrInvalidKey = errors.New("storage: invalid key")

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	return nil
}
