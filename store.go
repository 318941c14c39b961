package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"log"

	"github.com/boltdb/bolt"
)

var (
	dbpath = flag.String("db", "boxen.db", "db file name")
)

var (
	cameraBucket = []byte("camera")

	store *Store
)

func InitStore() error {
	var err error
	store, err = NewStore(*dbpath)
	return err
}

// Store persists camera pose between runs.
type Store struct {
	db *bolt.DB
}

func NewStore(p string) (*Store, error) {
	db, err := bolt.Open(p, 0666, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cameraBucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	db.NoSync = true
	return &Store{
		db: db,
	}, nil
}

func (s *Store) UpdateCameraState(state CameraState) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(cameraBucket)
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, &state)
		return bkt.Put(cameraBucket, buf.Bytes())
	})
}

// GetCameraState returns the saved pose, or a default one looking at the
// scene from above the platform when nothing was saved yet.
func (s *Store) GetCameraState() CameraState {
	state := CameraState{Y: 3, Z: 6, Rx: -90}
	s.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(cameraBucket)
		value := bkt.Get(cameraBucket)
		if value == nil {
			return nil
		}
		buf := bytes.NewBuffer(value)
		if err := binary.Read(buf, binary.LittleEndian, &state); err != nil {
			log.Printf("decode camera state: %v", err)
		}
		return nil
	})
	return state
}

func (s *Store) Close() {
	s.db.Sync()
	s.db.Close()
}
