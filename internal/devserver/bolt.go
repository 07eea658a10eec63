package devserver

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var (
	// notesBucket maps a big-endian creation sequence to the JSON note.
	notesBucket = []byte("notes")
	// idsBucket maps a note id to its key in notesBucket.
	idsBucket = []byte("ids")
)

// BoltStore keeps notes in a bbolt database file.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the bbolt file at path.
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(notesBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(idsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) List(ctx context.Context) ([]Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []Note{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(notesBucket).ForEach(func(_, v []byte) error {
			var n Note
			if err := json.Unmarshal(v, &n); err != nil {
				return err
			}
			out = append(out, n)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BoltStore) Create(ctx context.Context, title, content string) (Note, error) {
	if err := ctx.Err(); err != nil {
		return Note{}, err
	}
	n := Note{ID: uuid.NewString(), Title: title, Content: content}
	err := s.db.Update(func(tx *bolt.Tx) error {
		notes := tx.Bucket(notesBucket)
		seq, err := notes.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		data, err := json.Marshal(n)
		if err != nil {
			return err
		}
		if err := notes.Put(key, data); err != nil {
			return err
		}
		return tx.Bucket(idsBucket).Put([]byte(n.ID), key)
	})
	if err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *BoltStore) Update(ctx context.Context, n Note) (Note, error) {
	if err := ctx.Err(); err != nil {
		return Note{}, err
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		key := tx.Bucket(idsBucket).Get([]byte(n.ID))
		if key == nil {
			return ErrNotFound
		}
		data, err := json.Marshal(n)
		if err != nil {
			return err
		}
		return tx.Bucket(notesBucket).Put(key, data)
	})
	if err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *BoltStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		ids := tx.Bucket(idsBucket)
		key := ids.Get([]byte(id))
		if key == nil {
			return ErrNotFound
		}
		// bolt values are only valid until the next write in the transaction.
		key = append([]byte(nil), key...)
		if err := tx.Bucket(notesBucket).Delete(key); err != nil {
			return err
		}
		return ids.Delete([]byte(id))
	})
}

func (s *BoltStore) Close() error { return s.db.Close() }
