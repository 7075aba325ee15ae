// Package api provides the HTTP JSON API for the operations dashboard.
// It serves resource lookups, listings, and the composed plugin surfaces.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"opsboard/db/clickhouse"
	"opsboard/internal/tasks"
	boarderrors "opsboard/pkg/errors"
	"opsboard/pkg/platform"
	"opsboard/pkg/snapshot"
	"opsboard/plugin"
	"opsboard/resolve"
)

// SnapshotProvider hands the server the latest infrastructure snapshot.
// Fetching and refresh cycles belong to the provider, not to this server.
type SnapshotProvider interface {
	Latest(ctx context.Context) (*snapshot.Snapshot, error)
}

// Server is the HTTP API server.
type Server struct {
	httpServer *http.Server
	resolver   *resolve.Resolver
	plugins    plugin.Composed
	provider   SnapshotProvider
	archive    *clickhouse.Store // optional
	taskClient *tasks.Client     // optional
	config     *Config
}

// Config holds server configuration.
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int64
	CORSOrigins    []string
	Account        string
	Region         string
}

// DefaultConfig returns default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:           platform.GetEnvInt("OPSBOARD_PORT", 8080),
		ReadTimeout:    platform.GetEnvDuration("OPSBOARD_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:   platform.GetEnvDuration("OPSBOARD_WRITE_TIMEOUT", 60*time.Second),
		MaxRequestSize: 10 * 1024 * 1024, // 10MB
		CORSOrigins:    []string{"*"},
		Account:        platform.GetEnv("OPSBOARD_ACCOUNT", "default"),
		Region:         platform.GetEnv("AWS_REGION", "us-east-1"),
	}
}

// NewServer creates a new API server. The archive store and task client are
// optional; endpoints depending on them respond with a service-unavailable
// payload when absent.
func NewServer(resolver *resolve.Resolver, plugins plugin.Composed, provider SnapshotProvider, config *Config) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	return &Server{
		resolver: resolver,
		plugins:  plugins,
		provider: provider,
		config:   config,
	}
}

// WithArchive attaches the snapshot archive store.
func (s *Server) WithArchive(store *clickhouse.Store) *Server {
	s.archive = store
	return s
}

// WithTaskClient attaches the ECS task collaborator.
func (s *Server) WithTaskClient(client *tasks.Client) *Server {
	s.taskClient = client
	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	slog.Info("opsboard API server starting", "port", s.config.Port)
	return s.httpServer.ListenAndServe()
}

// Handler builds the route table. Exposed so tests can drive the server
// through httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.HandleFunc("/api/v1/resource/", s.handleResource)
	mux.HandleFunc("/api/v1/resources/", s.handleResources)
	mux.HandleFunc("/api/v1/navigation", s.handleNavigation)
	mux.HandleFunc("/api/v1/pages", s.handlePages)
	mux.HandleFunc("/api/v1/widgets", s.handleWidgets)
	mux.HandleFunc("/api/v1/snapshots", s.handleSnapshots)

	return s.corsMiddleware(s.loggingMiddleware(mux))
}

// StartWithGracefulShutdown starts the server and drains on SIGINT/SIGTERM.
func (s *Server) StartWithGracefulShutdown() error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		slog.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"request_id", requestID,
			"duration", time.Since(start).String(),
		)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		allowed := false
		for _, o := range s.config.CORSOrigins {
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// HEALTH ENDPOINTS
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if s.archive != nil {
		if err := s.archive.Ping(ctx); err != nil {
			s.jsonError(w, http.StatusServiceUnavailable, "archive not ready")
			return
		}
	}
	if _, err := s.provider.Latest(ctx); err != nil {
		s.jsonError(w, http.StatusServiceUnavailable, "snapshot not ready")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ready"})
}

// =============================================================================
// RESOURCE ENDPOINTS
// =============================================================================

// handleResource serves GET /api/v1/resource/{type}/{id}. An unregistered
// type and a missing record are distinct outcomes with distinct error codes.
func (s *Server) handleResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/resource/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		s.jsonError(w, http.StatusBadRequest, "expected /api/v1/resource/{type}/{id}")
		return
	}
	resourceType, id := parts[0], parts[1]

	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	rec, err := s.resolver.Resolve(resourceType, id, snap)
	if err != nil {
		if errors.Is(err, resolve.ErrNoHandler) {
			s.boardError(w, http.StatusNotFound, boarderrors.NewUnknownResourceTypeError(resourceType))
			return
		}
		s.jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if rec == nil && resourceType == "task" && s.taskClient != nil {
		s.handleTaskLookup(w, r, id)
		return
	}
	if rec == nil {
		s.boardError(w, http.StatusNotFound, boarderrors.NewResourceNotFoundError(resourceType, id))
		return
	}

	parsed, _ := s.resolver.ParseID(resourceType, id)
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"resourceType": resourceType,
		"id":           parsed,
		"record":       rec,
	})
}

// handleTaskLookup resolves a task through the ECS collaborator when the
// snapshot has nothing to offer, which for tasks is always.
func (s *Server) handleTaskLookup(w http.ResponseWriter, r *http.Request, id string) {
	detail, err := s.taskClient.Lookup(r.Context(), id)
	if err != nil {
		s.boardError(w, http.StatusBadGateway, boarderrors.NewTaskLookupFailedError(id, err))
		return
	}
	if detail == nil {
		s.boardError(w, http.StatusNotFound, boarderrors.NewResourceNotFoundError("task", id))
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"resourceType": "task",
		"record":       detail,
	})
}

// handleResources serves GET /api/v1/resources/{type}.
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resourceType := strings.TrimPrefix(r.URL.Path, "/api/v1/resources/")
	if resourceType == "" {
		s.jsonError(w, http.StatusBadRequest, "expected /api/v1/resources/{type}")
		return
	}

	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	recs, err := s.resolver.ListAll(resourceType, snap)
	if err != nil {
		if errors.Is(err, resolve.ErrNoHandler) {
			s.boardError(w, http.StatusNotFound, boarderrors.NewUnknownResourceTypeError(resourceType))
			return
		}
		s.jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if recs == nil {
		recs = []snapshot.Record{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"resourceType": resourceType,
		"count":        len(recs),
		"items":        recs,
	})
}

// =============================================================================
// PLUGIN SURFACES
// =============================================================================

func (s *Server) handleNavigation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.plugins.NavItems)
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.plugins.VisiblePages())
}

// handleWidgets serves GET /api/v1/widgets?position=overview, rendering the
// widgets eligible for the requested position.
func (s *Server) handleWidgets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	position := r.URL.Query().Get("position")
	if position == "" {
		position = "overview"
	}

	snap, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	type WidgetResponse struct {
		ID       string      `json:"id"`
		Priority int         `json:"priority"`
		Data     interface{} `json:"data,omitempty"`
		Error    string      `json:"error,omitempty"`
	}

	widgets := s.plugins.WidgetsFor(position)
	resp := make([]WidgetResponse, 0, len(widgets))
	for _, wd := range widgets {
		item := WidgetResponse{ID: wd.ID, Priority: wd.Priority}
		if wd.Component != nil {
			data, err := wd.Component().Render(r.Context(), snap)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Data = data
			}
		}
		resp = append(resp, item)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// =============================================================================
// SNAPSHOT ARCHIVE ENDPOINTS
// =============================================================================

func (s *Server) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListSnapshots(w, r)
	case http.MethodPost:
		platform.BasicAuthMiddleware(s.handleArchiveSnapshot)(w, r)
	default:
		s.jsonError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.jsonError(w, http.StatusServiceUnavailable, "snapshot archive not configured")
		return
	}

	rows, err := s.archive.History(r.Context(), s.config.Account, s.config.Region, 20)
	if err != nil {
		s.jsonError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list snapshots: %v", err))
		return
	}

	type SnapshotResponse struct {
		ID        string `json:"id"`
		Account   string `json:"account"`
		Region    string `json:"region"`
		Hash      string `json:"hash"`
		FetchedAt string `json:"fetched_at"`
		CreatedAt string `json:"created_at"`
	}

	resp := make([]SnapshotResponse, len(rows))
	for i, row := range rows {
		resp[i] = SnapshotResponse{
			ID:        row.ID.String(),
			Account:   row.Account,
			Region:    row.Region,
			Hash:      row.Hash,
			FetchedAt: row.FetchedAt.Format(time.RFC3339),
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleArchiveSnapshot accepts a raw snapshot document from the fetch
// collaborator and archives it. The body must decode as a snapshot tree.
func (s *Server) handleArchiveSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		s.jsonError(w, http.StatusServiceUnavailable, "snapshot archive not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if _, err := snapshot.Decode(body); err != nil {
		s.jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.archive.Archive(r.Context(), s.config.Account, s.config.Region, time.Now(), body)
	if err != nil {
		s.jsonError(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", boarderrors.ErrCodeArchiveFailed, err))
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// =============================================================================
// HELPERS
// =============================================================================

// loadSnapshot fetches the latest snapshot, writing the error response on
// failure. A false return means the response is already written.
func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request) (*snapshot.Snapshot, bool) {
	snap, err := s.provider.Latest(r.Context())
	if err != nil || snap == nil {
		s.boardError(w, http.StatusServiceUnavailable, boarderrors.NewSnapshotUnavailableError())
		return nil, false
	}
	return snap, true
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}

func (s *Server) boardError(w http.ResponseWriter, status int, berr *boarderrors.BoardError) {
	s.jsonResponse(w, status, map[string]interface{}{
		"error": berr,
	})
}
