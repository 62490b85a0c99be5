package document

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHead(t *testing.T) {
	t.Run("NewHead", func(t *testing.T) {
		head := NewHead("/favicon.ico")
		assert.Equal(t, "/favicon.ico", head.Favicon())
		assert.Empty(t, head.Title())
		assert.Zero(t, head.FaviconWrites())
	})

	t.Run("SetTitle", func(t *testing.T) {
		head := NewHead("")
		head.SetTitle("Pong | Jones Jankovic")
		assert.Equal(t, "Pong | Jones Jankovic", head.Title())
	})

	t.Run("SetFavicon", func(t *testing.T) {
		head := NewHead("/favicon.ico")
		head.SetFavicon("data:image/png;base64,AAAA")
		assert.Equal(t, "data:image/png;base64,AAAA", head.Favicon())
		assert.Equal(t, 1, head.FaviconWrites())
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		head := NewHead("")
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				head.SetFavicon("x")
			}()
			go func() {
				defer wg.Done()
				_ = head.Favicon()
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, head.FaviconWrites())
	})
}

func TestRender(t *testing.T) {
	head := NewHead("data:image/png;base64,iVBORw0KGgo=")
	head.SetTitle("Tetris | Jones Jankovic")

	var buf bytes.Buffer
	err := Render(&buf, head, Page{Route: "tetris", View: "TetrisView", ScrollTop: 120})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Tetris | Jones Jankovic</title>")
	assert.Contains(t, out, `href="data:image/png;base64,iVBORw0KGgo="`)
	assert.Contains(t, out, `data-view="TetrisView"`)
	assert.Contains(t, out, `data-scroll-top="120"`)
}

func TestRender_NoFavicon(t *testing.T) {
	head := NewHead("")
	head.SetTitle("Jones Jankovic")

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, head, Page{Route: "home", View: "HomeView"}))
	assert.Contains(t, buf.String(), `<link rel="icon">`)
}
