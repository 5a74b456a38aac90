package flatfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/backend/flatfile"
)

func newFile(t *testing.T) *flatfile.File {
	t.Helper()
	return flatfile.New(filepath.Join(t.TempDir(), "tasks.txt"))
}

func TestLoad_MissingFile(t *testing.T) {
	f := newFile(t)
	ctx := context.Background()

	exists, err := f.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	got, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cases := map[string][]string{
		"empty": nil,
		"one":   {"buy milk"},
		"many":  {"buy milk", "walk dog", "buy milk", "ünïcode ✓", "tabs\tinside"},
	}

	for name, tasks := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFile(t)
			require.NoError(t, f.Save(ctx, tasks))

			exists, err := f.Exists(ctx)
			require.NoError(t, err)
			assert.True(t, exists)

			got, err := f.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, len(tasks), len(got))
			for i := range tasks {
				assert.Equal(t, tasks[i], got[i])
			}
		})
	}
}

func TestSave_Format(t *testing.T) {
	f := newFile(t)
	require.NoError(t, f.Save(context.Background(), []string{"a", "b"}))

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestSave_Overwrites(t *testing.T) {
	ctx := context.Background()
	f := newFile(t)
	require.NoError(t, f.Save(ctx, []string{"one", "two", "three"}))
	require.NoError(t, f.Save(ctx, []string{"four"}))

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.Equal(t, "four\n", string(data))
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	f := newFile(t)
	require.NoError(t, os.WriteFile(f.Path(), []byte("a\n\n  \nb\n"), 0644))

	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestLoad_CRLF(t *testing.T) {
	f := newFile(t)
	require.NoError(t, os.WriteFile(f.Path(), []byte("a\r\n\r\nb\r\n"), 0644))

	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestLoad_NoTrailingNewline(t *testing.T) {
	f := newFile(t)
	require.NoError(t, os.WriteFile(f.Path(), []byte("a\nb"), 0644))

	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSave_Error(t *testing.T) {
	// A directory in place of the file cannot be opened for writing.
	dir := t.TempDir()
	f := flatfile.New(dir)

	err := f.Save(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), dir)
}

func TestLoad_Error(t *testing.T) {
	dir := t.TempDir()
	f := flatfile.New(dir)

	_, err := f.Load(context.Background())
	require.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	f := newFile(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, f.Save(ctx, []string{"a"}), context.Canceled)
	_, err := f.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
