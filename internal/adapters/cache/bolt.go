package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

var snapshotBucket = []byte("snapshots")

// Default bolt store configuration constants.
const (
	defaultFileMode    os.FileMode = 0o600
	defaultOpenTimeout             = 1 * time.Second
)

// BoltStore implements Store on a single-file bbolt database.
type BoltStore struct {
	db          *bolt.DB
	fileMode    os.FileMode
	openTimeout time.Duration
}

// NewBoltStore opens (or creates) the database file at path.
func NewBoltStore(path string, opts ...BoltOption) (*BoltStore, error) {
	s := &BoltStore{
		fileMode:    defaultFileMode,
		openTimeout: defaultOpenTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	db, err := bolt.Open(path, s.fileMode, &bolt.Options{Timeout: s.openTimeout})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrUnavailable, path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: init bucket: %w", ErrUnavailable, err)
	}

	s.db = db
	return s, nil
}

// Save overwrites the entry at key with a JSON-encoded snapshot.
func (s *BoltStore) Save(ctx context.Context, key string, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encode entry %q: %w", key, err)
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(snapshotBucket).Put([]byte(key), buf)
	}); err != nil {
		return fmt.Errorf("cache: write entry %q: %w", key, err)
	}
	return nil
}

// Load reads the entry at key. A missing key or an undecodable value both
// report not-found; only a failing read transaction surfaces as an error.
func (s *BoltStore) Load(ctx context.Context, key string) (Entry, bool, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, false, err
	}
	var raw []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(snapshotBucket).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return Entry{}, false, fmt.Errorf("cache: read entry %q: %w", key, err)
	}
	if raw == nil {
		return Entry{}, false, nil
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		// A corrupt snapshot degrades to a miss; the next save supersedes it.
		return Entry{}, false, nil
	}
	return e, true, nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error { return s.db.Close() }
