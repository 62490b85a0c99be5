package favicon

import (
	"context"
	"image"
	"log/slog"

	"github.com/jjankovic/site/internal/document"
)

// State is the progress of an asynchronous icon load.
type State int

const (
	// Pending means the load has not completed.
	Pending State = iota
	// Loaded means Image holds the decoded icon.
	Loaded
	// Failed means Err explains why the icon could not be loaded.
	Failed
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Result is the outcome of LoadAsync.
type Result struct {
	State State
	Image image.Image
	Err   error
}

// LoadAsync starts loading href and delivers exactly one Result on the
// returned channel.
func LoadAsync(ctx context.Context, loader Loader, href string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		img, err := loader.Load(ctx, href)
		if err != nil {
			out <- Result{State: Failed, Err: err}
			return
		}
		out <- Result{State: Loaded, Image: img}
	}()
	return out
}

// Synthesizer replaces a document's icon with a circular version of itself.
type Synthesizer struct {
	Loader Loader
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(loader Loader) *Synthesizer {
	return &Synthesizer{Loader: loader}
}

// Apply starts the synthesis without waiting for it. The returned channel is
// closed once the work is over, whatever the outcome. A document without an
// icon href is left untouched, as is one whose icon fails to load.
func (s *Synthesizer) Apply(ctx context.Context, doc document.Document) <-chan struct{} {
	done := make(chan struct{})

	href := doc.Favicon()
	if href == "" {
		close(done)
		return done
	}

	results := LoadAsync(ctx, s.Loader, href)
	go func() {
		defer close(done)

		var res Result
		select {
		case res = <-results:
		case <-ctx.Done():
			return
		}

		if res.State != Loaded {
			slog.DebugContext(ctx, "Favicon source unavailable", "href", href, "error", res.Err)
			return
		}

		uri, err := Synthesize(res.Image)
		if err != nil {
			slog.DebugContext(ctx, "Favicon synthesis failed", "href", href, "error", err)
			return
		}
		doc.SetFavicon(uri)
	}()

	return done
}
