package serve

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"

	"github.com/ggicci/httpin"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	commonHttp "github.com/hibare/GoCommon/v2/pkg/http"
	commonMiddleware "github.com/hibare/GoCommon/v2/pkg/http/middleware"
	"github.com/jjankovic/site/internal/assets"
	"github.com/jjankovic/site/internal/config"
	"github.com/jjankovic/site/internal/constants"
	"github.com/jjankovic/site/internal/document"
	"github.com/jjankovic/site/internal/favicon"
	"github.com/jjankovic/site/internal/middleware/security"
	"github.com/jjankovic/site/internal/router"
)

var (
	// ErrInvalidRequestFormat is an error that occurs when a request format is invalid.
	ErrInvalidRequestFormat = errors.New("invalid request format")

	// ErrFaviconNotReady is returned while the circular icon is still being synthesized.
	ErrFaviconNotReady = errors.New("favicon not ready")
)

// Server serves the site pages, its icons and the route API.
type Server struct {
	table       *router.Table
	site        *document.Head
	synthesizer *favicon.Synthesizer

	synthOnce sync.Once
	iconDone  chan struct{}

	roundMu sync.RWMutex
	round   []byte
}

// NewServer creates a new Server instance. The site icon starts as the
// configured source href, or the embedded icon when none is set.
func NewServer() (*Server, error) {
	source := config.Current.Favicon.Source
	if source == "" {
		source = constants.FaviconPath
	}

	client := &http.Client{Timeout: config.Current.HTTPClient.Timeout}
	loader := favicon.NewMultiLoader(client, favicon.StaticLoader{
		constants.FaviconPath: assets.Favicon,
	})

	return &Server{
		table:       router.DefaultTable(),
		site:        document.NewHead(source),
		synthesizer: favicon.NewSynthesizer(loader),
		iconDone:    make(chan struct{}),
	}, nil
}

type resolveInput struct {
	Path string `in:"query=path" validate:"required,startswith=/"`
}

func (in resolveInput) Validate() error {
	validate := validator.New()
	return validate.Struct(in)
}

// ResolveResponse describes how a path resolves.
type ResolveResponse struct {
	Path          string `json:"path"`
	Name          string `json:"name"`
	View          string `json:"view"`
	Title         string `json:"title,omitempty"`
	DocumentTitle string `json:"document_title"`
	Status        int    `json:"status"`
}

// SynthesizeFavicon starts deriving the circular site icon. It does not wait.
// Only the first call does any work; later calls return the same channel.
func (s *Server) SynthesizeFavicon(ctx context.Context) <-chan struct{} {
	s.synthOnce.Do(func() {
		applied := s.synthesizer.Apply(ctx, s.site)
		go func() {
			defer close(s.iconDone)
			<-applied
			// Apply only writes the icon link after a successful crop.
			if s.site.FaviconWrites() == 0 {
				return
			}
			s.storeRound(s.site.Favicon())
		}()
	})
	return s.iconDone
}

func (s *Server) storeRound(href string) {
	encoded, ok := strings.CutPrefix(href, favicon.DataURIPrefix)
	if !ok {
		return
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		slog.Error("Failed to decode synthesized favicon", "error", err)
		return
	}

	s.roundMu.Lock()
	defer s.roundMu.Unlock()
	s.round = data
}

// Handler builds the HTTP routes of the site.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(constants.DefaultServerTimeout))
	r.Use(middleware.StripSlashes)
	r.Use(middleware.CleanPath)
	r.Use(middleware.Heartbeat(constants.PingPath))
	r.Use(security.BasicSecurity)

	r.Get(constants.FaviconPath, s.handleFavicon)
	r.Get("/assets/favicon.ico", s.handleFavicon)
	r.Get(constants.RoundFaviconPath, s.handleRoundFavicon)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.NoCache)
		if tokens := config.Current.Server.APITokens; len(tokens) > 0 {
			r.Use(func(next http.Handler) http.Handler {
				return commonMiddleware.TokenAuth(next, tokens)
			})
		}

		r.Get("/routes", s.handleRoutes)
		r.With(httpin.NewInput(resolveInput{})).Get("/resolve", s.handleResolve)
	})

	r.NotFound(s.handlePage)

	return r
}

// Start runs the server until an interrupt is received.
func (s *Server) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.SynthesizeFavicon(ctx)

	srvAddr := fmt.Sprintf(":%d", config.Current.Server.Port)
	srv := &http.Server{
		Handler:      s.Handler(),
		Addr:         srvAddr,
		WriteTimeout: config.Current.Server.WriteTimeout,
		ReadTimeout:  config.Current.Server.ReadTimeout,
		IdleTimeout:  config.Current.Server.IdleTimeout,
	}

	slog.InfoContext(ctx, "Site started", "address", srvAddr)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start server", "error", err)
			errChan <- err
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	select {
	case err := <-errChan:
		return err
	case <-c:
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, constants.DefaultServerShutdownGracePeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "Server shutdown failed", "error", err)
		return err
	}

	slog.InfoContext(ctx, "Server shutdown successfully")
	return nil
}

// handlePage renders the shell for any path. Each request gets its own head
// seeded with the current site icon, and the title is set by the navigation
// guard before rendering.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	head := document.NewHead(s.site.Favicon())
	nav := router.NewNavigator(s.table, router.TitleGuard(head))
	tr := nav.Push(r.URL.Path)

	status := http.StatusOK
	if tr.Route.IsWildcard() {
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	page := document.Page{
		Route:      tr.Route.Name,
		View:       tr.Route.View,
		ScrollTop:  tr.Scroll.Top,
		ScrollLeft: tr.Scroll.Left,
	}
	if err := document.Render(w, head, page); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render page", "path", tr.Path, "error", err)
	}
}

func (s *Server) handleFavicon(w http.ResponseWriter, r *http.Request) {
	writeIcon(w, r, assets.Favicon)
}

func (s *Server) handleRoundFavicon(w http.ResponseWriter, r *http.Request) {
	s.roundMu.RLock()
	data := s.round
	s.roundMu.RUnlock()

	if data == nil {
		commonHttp.WriteErrorResponse(w, http.StatusNotFound, ErrFaviconNotReady)
		return
	}
	writeIcon(w, r, data)
}

func writeIcon(w http.ResponseWriter, r *http.Request, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))

	if _, err := w.Write(data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to serve favicon", "error", err)
	}
}

func (s *Server) handleRoutes(w http.ResponseWriter, _ *http.Request) {
	commonHttp.WriteJsonResponse(w, http.StatusOK, s.table.Descriptors())
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	payload, ok := r.Context().Value(httpin.Input).(*resolveInput)
	if !ok {
		commonHttp.WriteErrorResponse(w, http.StatusBadRequest, ErrInvalidRequestFormat)
		return
	}
	if err := payload.Validate(); err != nil {
		commonHttp.WriteErrorResponse(w, http.StatusBadRequest, err)
		return
	}

	d := s.table.Resolve(payload.Path)
	status := http.StatusOK
	if d.IsWildcard() {
		status = http.StatusNotFound
	}

	commonHttp.WriteJsonResponse(w, http.StatusOK, ResolveResponse{
		Path:          router.Normalize(payload.Path),
		Name:          d.Name,
		View:          d.View,
		Title:         d.Title,
		DocumentTitle: router.FormatTitle(d.Title),
		Status:        status,
	})
}
