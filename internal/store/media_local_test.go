package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-music-library/internal/logger"
)

func newTestLocalMedia(t *testing.T) (MediaStorage, string) {
	t.Helper()
	root := t.TempDir()
	media, err := NewLocalMediaStorage(root, logger.Nop())
	require.NoError(t, err)
	return media, root
}

func TestLocalMediaStorage_SaveOpenRemove(t *testing.T) {
	media, root := newTestLocalMedia(t)
	ctx := context.Background()
	key := "uploads/audio/audioFile-1-2.mp3"

	require.NoError(t, media.Save(ctx, key, strings.NewReader("ID3 data"), 8, "audio/mpeg"))

	_, err := os.Stat(filepath.Join(root, "uploads", "audio", "audioFile-1-2.mp3"))
	require.NoError(t, err)

	obj, err := media.Open(ctx, key)
	require.NoError(t, err)
	content, err := io.ReadAll(obj.Content)
	require.NoError(t, err)
	require.NoError(t, obj.Content.Close())

	assert.Equal(t, "ID3 data", string(content))
	assert.Equal(t, int64(8), obj.Size)
	assert.Equal(t, "audio/mpeg", obj.ContentType)

	require.NoError(t, media.Remove(ctx, key))
	_, err = media.Open(ctx, key)
	assert.ErrorIs(t, err, ErrMediaNotFound)

	// повторное удаление не ошибка
	assert.NoError(t, media.Remove(ctx, key))
}

func TestLocalMediaStorage_SaveDoesNotOverwrite(t *testing.T) {
	media, _ := newTestLocalMedia(t)
	ctx := context.Background()
	key := "uploads/images/albumArt-1-1.png"

	require.NoError(t, media.Save(ctx, key, strings.NewReader("first"), 5, "image/png"))
	assert.Error(t, media.Save(ctx, key, strings.NewReader("second"), 6, "image/png"))

	obj, err := media.Open(ctx, key)
	require.NoError(t, err)
	defer obj.Content.Close()
	content, _ := io.ReadAll(obj.Content)
	assert.Equal(t, "first", string(content))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestLocalMediaStorage_SaveRemovesPartialFile(t *testing.T) {
	media, root := newTestLocalMedia(t)
	key := "uploads/audio/broken.mp3"

	err := media.Save(context.Background(), key, failingReader{}, 10, "audio/mpeg")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "uploads", "audio", "broken.mp3"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalMediaStorage_RejectsEscapingKeys(t *testing.T) {
	media, _ := newTestLocalMedia(t)
	ctx := context.Background()

	for _, key := range []string{"", "/etc/passwd", "../secret", "uploads/../../x", `uploads\..\x`, "."} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, media.Save(ctx, key, strings.NewReader("x"), 1, ""), ErrInvalidMediaKey)
			_, err := media.Open(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidMediaKey)
			assert.ErrorIs(t, media.Remove(ctx, key), ErrInvalidMediaKey)
		})
	}
}

func TestLocalMediaStorage_OpenDirectory(t *testing.T) {
	media, root := newTestLocalMedia(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "uploads", "audio"), 0o755))

	_, err := media.Open(context.Background(), "uploads/audio")
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func Test_cleanKey(t *testing.T) {
	cleaned, err := cleanKey("uploads//audio/./a.mp3")
	require.NoError(t, err)
	assert.Equal(t, "uploads/audio/a.mp3", cleaned)
}
