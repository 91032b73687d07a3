package fileutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
)

const lockRetryDelay = 50 * time.Millisecond

// WriteFileAtomic writes data to path with the given mode. See WriteAtomic.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	return WriteAtomic(context.Background(), path, mode, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
}

// WriteAtomic creates the parent directory, then streams write into a pending
// file that replaces path only after an fsync. Concurrent writers targeting the
// same path are serialized through a lock file in the temp directory, so
// readers always observe either the old or the new content.
func WriteAtomic(ctx context.Context, path string, mode os.FileMode, write func(io.Writer) error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", abs, err)
	}

	lock := flock.New(LockPath(abs))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock %s: %w", abs, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: not acquired", abs)
	}
	defer func() { _ = lock.Unlock() }()

	pending, err := renameio.NewPendingFile(abs, renameio.WithStaticPermissions(mode))
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", abs, err)
	}
	defer func() { _ = pending.Cleanup() }()

	if err := write(pending); err != nil {
		return fmt.Errorf("write %s: %w", abs, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", abs, err)
	}
	return nil
}

// LockPath returns the lock file used to serialize writes to path.
func LockPath(path string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(path)))
	return filepath.Join(os.TempDir(), "jekyllwind-"+hex.EncodeToString(sum[:8])+".lock")
}

// Exists reports whether path exists and is a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
