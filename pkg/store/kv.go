package store

import (
	bolt "go.etcd.io/bbolt"

	"github.com/Bryantad/Sona-sub001/pkg/store/storedefs"
)

func init() {
	initDB["initialize key-value table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketKV))
		return err
	}
}

// Get gets the value of a key.
func (s *dbStore) Get(k string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKV))
		v := b.Get([]byte(k))
		if v == nil {
			return storedefs.ErrNoKey
		}
		value = string(v)
		return nil
	})
	return value, err
}

// Put sets the value of a key.
func (s *dbStore) Put(k, v string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKV))
		return b.Put([]byte(k), []byte(v))
	})
}

// Del deletes a key. Deleting a key that does not exist is not an error.
func (s *dbStore) Del(k string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKV))
		return b.Delete([]byte(k))
	})
}

// Keys returns all keys in byte order.
func (s *dbStore) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketKV))
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}
