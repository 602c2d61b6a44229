package state

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"invoice-service/internal/pkg/errs"
)

// FileStore keeps each record as a JSON document under a data
// directory. Writes go through a temp file and rename so a crash
// mid-save never leaves a half-written record behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create data directory")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) LoadAuth(_ context.Context) (*AuthRecord, error) {
	var rec AuthRecord
	ok, err := s.load(AuthRecordName, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *FileStore) SaveAuth(_ context.Context, rec *AuthRecord) error {
	return s.save(AuthRecordName, rec)
}

func (s *FileStore) LoadInvoices(_ context.Context) (*InvoicesRecord, error) {
	var rec InvoicesRecord
	ok, err := s.load(InvoiceRecordName, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

func (s *FileStore) SaveInvoices(_ context.Context, rec *InvoicesRecord) error {
	return s.save(InvoiceRecordName, rec)
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *FileStore) load(name string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errs.Wrap(err, "failed to read state file")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, errs.Wrap(err, "failed to decode state file")
	}
	return true, nil
}

func (s *FileStore) save(name string, rec any) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode state record")
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return errs.Wrap(err, "failed to create temp state file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to write state file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to close state file")
	}

	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return errs.Wrap(err, "failed to replace state file")
	}
	return nil
}
