package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldbuild/gold/internal/adapters/fs"
	"github.com/goldbuild/gold/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetector_IsStale_NoRecord(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())
	path := writeFile(t, t.TempDir(), "main.c", "int main(void) { return 0; }\n")

	stale, err := d.IsStale(path, "f0", nil)
	require.NoError(t, err)
	assert.True(t, stale, "a file without a record must be stale")
}

func TestDetector_IsStale_MissingFile(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())

	_, err := d.IsStale(filepath.Join(t.TempDir(), "gone.c"), "f0", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingSource))
}

func TestDetector_IsStale_Fresh(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())
	path := writeFile(t, t.TempDir(), "main.c", "int main(void) { return 0; }\n")

	record, err := d.Snapshot(path, "f0")
	require.NoError(t, err)

	stale, err := d.IsStale(path, "f0", &record)
	require.NoError(t, err)
	assert.False(t, stale, "an unchanged file must be fresh")
}

func TestDetector_IsStale_ContentChanged(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())
	dir := t.TempDir()
	path := writeFile(t, dir, "main.c", "int main(void) { return 0; }\n")

	record, err := d.Snapshot(path, "f0")
	require.NoError(t, err)

	writeFile(t, dir, "main.c", "int main(void) { return 1; }\n")

	stale, err := d.IsStale(path, "f0", &record)
	require.NoError(t, err)
	assert.True(t, stale, "a content change must be stale")
}

// A touched file with identical content, such as after a fresh checkout,
// falls through the mtime fast path to the content hash and stays fresh.
func TestDetector_IsStale_TouchedSameContent(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())
	path := writeFile(t, t.TempDir(), "main.c", "int main(void) { return 0; }\n")

	record, err := d.Snapshot(path, "f0")
	require.NoError(t, err)

	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	stale, err := d.IsStale(path, "f0", &record)
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestDetector_IsStale_FlagsChanged(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())
	path := writeFile(t, t.TempDir(), "main.c", "int main(void) { return 0; }\n")

	record, err := d.Snapshot(path, d.FlagsSignature([]string{"-O0"}))
	require.NoError(t, err)

	stale, err := d.IsStale(path, d.FlagsSignature([]string{"-O2"}), &record)
	require.NoError(t, err)
	assert.True(t, stale, "a flags change must invalidate the record")
}

func TestDetector_StaleSet(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())
	dir := t.TempDir()

	fresh := writeFile(t, dir, "fresh.c", "int f(void) { return 0; }\n")
	changed := writeFile(t, dir, "changed.c", "int g(void) { return 0; }\n")
	unknown := writeFile(t, dir, "unknown.c", "int h(void) { return 0; }\n")

	records := make(map[string]*domain.Record)
	for _, path := range []string{fresh, changed} {
		record, err := d.Snapshot(path, "f0")
		require.NoError(t, err)
		records[path] = &record
	}
	writeFile(t, dir, "changed.c", "int g(void) { return 1; }\n")

	stale, err := d.StaleSet(context.Background(), []string{fresh, changed, unknown}, "f0",
		func(path string) *domain.Record { return records[path] })
	require.NoError(t, err)

	assert.False(t, stale[fresh])
	assert.True(t, stale[changed])
	assert.True(t, stale[unknown])
}

func TestDetector_StaleSet_MissingSource(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())

	_, err := d.StaleSet(context.Background(), []string{filepath.Join(t.TempDir(), "gone.c")}, "f0",
		func(string) *domain.Record { return nil })
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingSource))
}

func TestDetector_Exists(t *testing.T) {
	d := fs.NewDetector(fs.NewHasher())
	dir := t.TempDir()
	path := writeFile(t, dir, "out.o", "obj")

	assert.True(t, d.Exists(path))
	assert.False(t, d.Exists(filepath.Join(dir, "missing.o")))
}

func TestHasher_FlagsHash(t *testing.T) {
	h := fs.NewHasher()

	assert.Equal(t, h.FlagsHash([]string{"-O2", "-Wall"}), h.FlagsHash([]string{"-O2", "-Wall"}))
	assert.NotEqual(t, h.FlagsHash([]string{"-O2", "-Wall"}), h.FlagsHash([]string{"-Wall", "-O2"}),
		"flag order is significant")
	// A boundary shift between adjacent flags must change the signature.
	assert.NotEqual(t, h.FlagsHash([]string{"-DA", "B"}), h.FlagsHash([]string{"-DAB"}))
}

func TestHasher_FileHash(t *testing.T) {
	h := fs.NewHasher()
	dir := t.TempDir()

	a := writeFile(t, dir, "a.c", "same content")
	b := writeFile(t, dir, "b.c", "same content")
	c := writeFile(t, dir, "c.c", "other content")

	hashA, err := h.FileHash(a)
	require.NoError(t, err)
	hashB, err := h.FileHash(b)
	require.NoError(t, err)
	hashC, err := h.FileHash(c)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.NotEqual(t, hashA, hashC)
	assert.Len(t, hashA, 16)

	_, err = h.FileHash(filepath.Join(dir, "missing.c"))
	require.Error(t, err)
}
