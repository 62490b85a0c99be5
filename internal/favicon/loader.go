package favicon

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/jjankovic/site/internal/constants"
)

var (
	// ErrUnsupportedScheme is returned for icon hrefs no loader understands.
	ErrUnsupportedScheme = errors.New("unsupported icon scheme")

	// ErrInvalidDataURI is returned for malformed data: hrefs.
	ErrInvalidDataURI = errors.New("invalid data uri")

	// ErrUnexpectedStatusCode is returned when a remote icon is not served with 200.
	ErrUnexpectedStatusCode = errors.New("unexpected status code")

	// ErrIconNotFound is returned when a site-relative icon is unknown.
	ErrIconNotFound = errors.New("icon not found")

	// ErrDecodeFailed is returned when icon bytes are not a supported image.
	ErrDecodeFailed = errors.New("failed to decode icon")

	// ErrImageTooLarge is returned when an icon declares dimensions above MaxIconDimension.
	ErrImageTooLarge = errors.New("icon dimensions too large")
)

// MaxIconDimension bounds the width and height of a decoded icon.
const MaxIconDimension = 4096

// Loader fetches and decodes the image referenced by an icon href.
type Loader interface {
	Load(ctx context.Context, href string) (image.Image, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, href string) (image.Image, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, href string) (image.Image, error) {
	return f(ctx, href)
}

// Decode decodes icon bytes in any registered format. The header is checked
// first so oversized images are rejected before any pixels are allocated.
func Decode(data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	if cfg.Width > MaxIconDimension || cfg.Height > MaxIconDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return img, nil
}

// HTTPLoader fetches http and https icons.
type HTTPLoader struct {
	Client *http.Client
}

// Load implements Loader.
func (l HTTPLoader) Load(ctx context.Context, href string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, href, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch icon: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxFaviconSourceBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read icon: %w", err)
	}
	return Decode(data)
}

// DataURILoader decodes data: hrefs.
type DataURILoader struct{}

// Load implements Loader.
func (DataURILoader) Load(_ context.Context, href string) (image.Image, error) {
	rest, ok := strings.CutPrefix(href, "data:")
	if !ok {
		return nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidDataURI
	}

	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
		}
		data = []byte(unescaped)
	}
	return Decode(data)
}

// StaticLoader serves site-relative hrefs from memory.
type StaticLoader map[string][]byte

// Load implements Loader.
func (l StaticLoader) Load(_ context.Context, href string) (image.Image, error) {
	data, ok := l[href]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIconNotFound, href)
	}
	return Decode(data)
}

// FileLoader reads icons from the local filesystem. It accepts plain paths
// and file:// URLs.
type FileLoader struct{}

// Load implements Loader.
func (FileLoader) Load(_ context.Context, href string) (image.Image, error) {
	name := strings.TrimPrefix(href, "file://")
	data, err := os.ReadFile(name) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read icon file: %w", err)
	}
	return Decode(data)
}

// MultiLoader dispatches on the href scheme. Nil fields disable that scheme.
type MultiLoader struct {
	HTTP   Loader
	Data   Loader
	Static Loader
	File   Loader
}

// NewMultiLoader wires every loader, serving site-relative hrefs from static.
func NewMultiLoader(client *http.Client, static StaticLoader) MultiLoader {
	return MultiLoader{
		HTTP:   HTTPLoader{Client: client},
		Data:   DataURILoader{},
		Static: static,
		File:   FileLoader{},
	}
}

// Load implements Loader.
func (m MultiLoader) Load(ctx context.Context, href string) (image.Image, error) {
	var next Loader
	switch {
	case strings.HasPrefix(href, "data:"):
		next = m.Data
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		next = m.HTTP
	case strings.HasPrefix(href, "file://"):
		next = m.File
	case strings.HasPrefix(href, "/"):
		next = m.Static
	}
	if next == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, href)
	}
	return next.Load(ctx, href)
}
