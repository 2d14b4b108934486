package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bagdasarian/league-manager/internal/snapshot"
	"github.com/rs/zerolog/log"
)

const backupSuffix = ".backup"

// snapshotRepository хранит снимок в одном файле. Перед записью существующий
// файл переименовывается в резервную копию.
type snapshotRepository struct {
	path   string
	format snapshot.Format
}

func NewSnapshotRepository(path string) *snapshotRepository {
	return &snapshotRepository{
		path:   path,
		format: snapshot.FormatForPath(path),
	}
}

func (r *snapshotRepository) Path() string {
	return r.path
}

func (r *snapshotRepository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := snap.Marshal(r.format)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if _, err := os.Stat(r.path); err == nil {
		backup, err := BackupPath(r.path)
		if err != nil {
			return fmt.Errorf("find backup name: %w", err)
		}
		if err := os.Rename(r.path, backup); err != nil {
			return fmt.Errorf("rotate backup: %w", err)
		}
		log.Debug().Str("path", r.path).Str("backup", backup).Msg("rotated snapshot backup")
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := writeFileAtomic(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepository) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	return snapshot.Unmarshal(data, r.format)
}

// BackupPath возвращает первое свободное имя: path.backup, path.backup1, path.backup2, ...
func BackupPath(path string) (string, error) {
	candidate := path + backupSuffix
	for i := 1; ; i++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = path + backupSuffix + strconv.Itoa(i)
	}
}

// PrimaryBackupPath - имя, с которого Load пробует восстановиться
func PrimaryBackupPath(path string) string {
	return path + backupSuffix
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
