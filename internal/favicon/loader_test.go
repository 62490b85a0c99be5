package favicon

import (
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	data, err := EncodePNG(patterned(w, h))
	require.NoError(t, err)
	return data
}

// withDimensions rewrites the IHDR chunk of a PNG to declare w×h.
func withDimensions(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), data...)
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestDecode(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		img, err := Decode(pngBytes(t, 9, 4))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 9, 4), img.Bounds())
	})

	t.Run("too large", func(t *testing.T) {
		huge := withDimensions(t, pngBytes(t, 2, 2), 1<<20, 1<<20)
		_, err := Decode(huge)
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("too wide", func(t *testing.T) {
		wide := withDimensions(t, pngBytes(t, 2, 2), MaxIconDimension+1, 1)
		_, err := Decode(wide)
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Decode([]byte("not an image"))
		assert.ErrorIs(t, err, ErrDecodeFailed)
	})
}

func TestHTTPLoader(t *testing.T) {
	icon := pngBytes(t, 8, 6)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/icon.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(icon)
	}))
	defer srv.Close()

	loader := HTTPLoader{Client: srv.Client()}

	t.Run("ok", func(t *testing.T) {
		img, err := loader.Load(context.Background(), srv.URL+"/icon.png")
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := loader.Load(context.Background(), srv.URL+"/missing.png")
		assert.ErrorIs(t, err, ErrUnexpectedStatusCode)
	})

	t.Run("not an image", func(t *testing.T) {
		txt := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("hello"))
		}))
		defer txt.Close()

		_, err := HTTPLoader{}.Load(context.Background(), txt.URL)
		assert.ErrorIs(t, err, ErrDecodeFailed)
	})
}

func TestDataURILoader(t *testing.T) {
	uri, err := EncodeDataURI(patterned(4, 4))
	require.NoError(t, err)

	img, err := DataURILoader{}.Load(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	for _, bad := range []string{"http://x", "data:image/png;base64", "data:image/png;base64,!!!"} {
		_, err = DataURILoader{}.Load(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidDataURI, bad)
	}
}

func TestStaticLoader(t *testing.T) {
	loader := StaticLoader{"/favicon.ico": pngBytes(t, 5, 5)}

	img, err := loader.Load(context.Background(), "/favicon.ico")
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())

	_, err = loader.Load(context.Background(), "/other.ico")
	assert.ErrorIs(t, err, ErrIconNotFound)
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, 3, 7), 0o600))

	img, err := FileLoader{}.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 7, img.Bounds().Dy())

	img, err = FileLoader{}.Load(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())

	_, err = FileLoader{}.Load(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestMultiLoader(t *testing.T) {
	calls := map[string]int{}
	stub := func(name string) Loader {
		return LoaderFunc(func(_ context.Context, _ string) (image.Image, error) {
			calls[name]++
			return patterned(1, 1), nil
		})
	}

	loader := MultiLoader{HTTP: stub("http"), Data: stub("data"), Static: stub("static"), File: stub("file")}
	for _, href := range []string{"https://x/i.png", "http://x/i.png", "data:,x", "/favicon.ico", "file:///tmp/i.png"} {
		_, err := loader.Load(context.Background(), href)
		require.NoError(t, err, href)
	}
	assert.Equal(t, map[string]int{"http": 2, "data": 1, "static": 1, "file": 1}, calls)

	_, err := loader.Load(context.Background(), "ftp://x/i.png")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = MultiLoader{}.Load(context.Background(), "/favicon.ico")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}
