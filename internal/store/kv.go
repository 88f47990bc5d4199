package store

import (
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"
)

// Read returns the JSON-decoded value under key, or def when the key is
// absent, the stored value does not decode, or storage fails. Failures are
// logged and never escape to the caller.
func Read[T any](s *Store, key string, def T) T {
	b, err := s.getRaw(key)
	if err != nil {
		if !errors.Is(err, errNotFound) {
			log.Warn("store read failed", "key", key, "err", err)
		}
		return def
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		// Corrupt value; treat as missing.
		log.Warn("store value corrupt", "key", key, "err", err)
		return def
	}
	return v
}

// Set JSON-encodes value and upserts it under key. Encode/storage failures
// are logged and swallowed; the previously persisted value is left in place
// and the caller's in-memory state stays authoritative.
func Set[T any](s *Store, key string, value T) {
	b, err := json.Marshal(value)
	if err != nil {
		log.Warn("store encode failed", "key", key, "err", err)
		return
	}
	if err := s.setRaw(key, b); err != nil {
		log.Warn("store write failed", "key", key, "err", err)
	}
}

// Update applies a pure transform to the value under key and persists the
// result, returning it. The transform sees def when nothing valid is stored.
func Update[T any](s *Store, key string, def T, fn func(T) T) T {
	v := fn(Read(s, key, def))
	Set(s, key, v)
	return v
}
