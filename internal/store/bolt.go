package store

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("fundlink")

// BoltStore is the durable key-value store, backed by a single-bucket bbolt
// file.
type BoltStore struct {
	db  *bolt.DB
	log zerolog.Logger
}

// NewBoltStore opens (or creates) the database file and ensures the bucket
// exists.
func NewBoltStore(path string, log zerolog.Logger) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltStore{db: db, log: log.With().Str("component", "store").Logger()}, nil
}

func (s *BoltStore) Get(key string, out any) bool {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("discarding corrupt stored value")
		return false
	}
	return true
}

func (s *BoltStore) Put(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("marshal for store failed")
		return
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	if err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("store write failed")
	}
}

func (s *BoltStore) Delete(key string) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("store delete failed")
	}
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
