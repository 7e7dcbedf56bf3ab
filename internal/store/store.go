// Package store persists studyfocus records in a bbolt database
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

const recordBucket = "records"

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// Put stores the JSON encoding of value under key.
func (c *Client) Put(key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return errEncode.Fmt(key).Wrap(err)
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordBucket)).Put([]byte(key), b)
	})
}

// Get decodes the value stored under key into dst. It reports false without
// an error if nothing is stored under key.
func (c *Client) Get(key string, dst any) (bool, error) {
	var found bool

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(recordBucket)).Get([]byte(key))
		if len(v) == 0 {
			return nil
		}

		found = true

		if err := json.Unmarshal(v, dst); err != nil {
			return errDecode.Fmt(key).Wrap(err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (c *Client) Save(key string, value any) {
	err := c.Put(key, value)
	if err != nil {
		slog.Warn("unable to persist record", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *Client) Load(key string, dst any) bool {
	found, err := c.Get(key, dst)
	if err != nil {
		slog.Warn("unable to load record", slog.String("key", key), slog.Any("error", err))
		return false
	}

	return found
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// Open returns a wrapper to a BoltDB connection.
func Open(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(recordBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
