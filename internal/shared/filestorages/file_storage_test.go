package filestorages

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")

	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	result, err := storage.Put(ctx, "reports/report_01H.csv", strings.NewReader("store_id\n"), PutOptions{})
	require.NoError(t, err)
	assert.Equal(t, "reports/report_01H.csv", result.FileKey)

	readCloser, err := storage.Get(ctx, "reports/report_01H.csv")
	require.NoError(t, err)
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, "store_id\n", string(data))
}

func TestPut_NoOverwriteConflict(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = storage.Put(ctx, "jobs/a.json", strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "jobs/a.json", strings.NewReader("second"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	// Losing writer must not clobber the original
	readCloser, err := storage.Get(ctx, "jobs/a.json")
	require.NoError(t, err)
	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestPut_OverwriteReplaces(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = storage.Put(ctx, "jobs/a.json", strings.NewReader("first"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	_, err = storage.Put(ctx, "jobs/a.json", strings.NewReader("second"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	readCloser, err := storage.Get(ctx, "jobs/a.json")
	require.NoError(t, err)
	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Get(context.Background(), "missing.csv")

	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestValidateKey_RejectsEscapingKeys(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", ".", "..", "../evil", "a/../../evil", "/etc/passwd"} {
		_, err := storage.Put(ctx, key, strings.NewReader("x"), PutOptions{})
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)

		_, err = storage.Get(ctx, key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}
