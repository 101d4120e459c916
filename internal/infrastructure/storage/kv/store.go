// Package kv provides the persistent key-value storage the club document
// lives in: Get returns the stored string or reports absence, Set overwrites
// it whole. No transactions, no expiry.
package kv

import "context"

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
