// Package storage is the durable local snapshot store behind the cart and
// likes stores. It is the analog of browser local storage: a small set of
// fixed keys, each holding one JSON snapshot, overwritten on every write.
package storage

import "errors"

// ErrNoSnapshot is returned when a key has never been written. Callers
// treat it as "no prior state", never as a failure.
var ErrNoSnapshot = errors.New("no snapshot")

type Store interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Delete(key string) error
}
