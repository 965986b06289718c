package writeback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockURLFileScheme(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(target, []byte("data"), 0o644))

	lock, err := LockURL("file://" + target)
	require.NoError(t, err)
	require.NoError(t, lock.Unlock())

	if _, err := os.Stat(target + ".trackerlock"); err != nil {
		t.Fatalf("lock file should have been created: %v", err)
	}
}

func TestURLLockUnlockNilSafe(t *testing.T) {
	var l *URLLock
	require.NoError(t, l.Unlock())
}
