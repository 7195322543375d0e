package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

var _ ports.TokenStore = (*FileStore)(nil)

// FileStore keeps the session as <dir>/<key>.json, written atomically with
// mode 0600.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore returns a store under dir. The directory is created on the
// first Persist.
func NewFileStore(dir, key string, log zerolog.Logger) *FileStore {
	if key == "" {
		key = DefaultKey
	}
	return &FileStore{
		path: filepath.Join(dir, key+".json"),
		log:  log.With().Str("component", "tokenstore").Str("backend", "file").Logger(),
	}
}

// Path returns the file backing the slot.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Persist(_ context.Context, session domain.Session) error {
	data, err := encode(session)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (*domain.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	session, ok := decode(data)
	if !ok {
		s.log.Warn().Str("path", s.path).Msg("stored session is corrupt, removing it")
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return session, nil
}

func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
