// Package jsonfile persists the board to flat JSON files under a data
// directory. It implements the same repository interfaces as the MySQL
// backend; every mutation rewrites the whole file so writes are durable
// as soon as the call returns.
package jsonfile

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	usersFile    = "users.json"
	postsFile    = "posts.json"
	commentsFile = "comments.json"
	likesFile    = "likes.json"
)

type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	return &Store{dir: dir}, nil
}

// load reads a collection file into v. A missing file is not an error,
// the collection is simply empty.
func (s *Store) load(name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read %s", name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode %s", name)
	}
	return nil
}

func (s *Store) save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}
