// Package server exposes the flattening service over HTTP.
package server

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/shibukawa/sqlflat/service"
	"github.com/shibukawa/sqlflat/wire"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Processor answers one request body.
type Processor interface {
	Process(body string) (service.Response, error)
}

// Options configures a Server.
type Options struct {
	// MaxBodyBytes limits request bodies; 0 means no limit.
	MaxBodyBytes int64
	// CacheSize is the number of cached responses; 0 disables the cache.
	CacheSize int
}

// Server routes HTTP requests to a Processor.
type Server struct {
	processor    Processor
	maxBodyBytes int64
	cache        *lru.Cache[[sha256.Size]byte, []byte]
	handler      http.Handler
}

// New creates a Server.
func New(processor Processor, opts Options) (*Server, error) {
	s := &Server{
		processor:    processor,
		maxBodyBytes: opts.MaxBodyBytes,
	}

	if opts.CacheSize > 0 {
		cache, err := lru.New[[sha256.Size]byte, []byte](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create response cache: %w", err)
		}
		s.cache = cache
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", s.handleParse)
	mux.HandleFunc("POST /parse", s.handleParse)
	mux.HandleFunc("GET /healthz", handleHealth)
	s.handler = accessLogMiddleware(mux)

	return s, nil
}

// Handler returns the routed handler with access logging.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe listens on addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully, waiting at most shutdownTimeout for active requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	Logger().Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	Logger().Info("shutting down", zap.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var reader io.Reader = r.Body
	if s.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	key := sha256.Sum256(body)
	if s.cache != nil {
		if data, ok := s.cache.Get(key); ok {
			writeJSON(w, http.StatusOK, data)
			return
		}
	}

	resp, err := s.processor.Process(string(body))
	if err != nil {
		Logger().Error("request failed", zap.Error(err), zap.String("request_id", RequestID(r.Context())))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	data, err := resp.JSON()
	if err != nil {
		Logger().Error("encode response", zap.Error(err), zap.String("request_id", RequestID(r.Context())))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(resp.Errors) > 0 {
		Logger().Debug("syntax errors", zap.Int("count", len(resp.Errors)), zap.String("request_id", RequestID(r.Context())))
	}

	if s.cache != nil {
		s.cache.Add(key, data)
	}

	writeJSON(w, http.StatusOK, data)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	data, err := wire.Marshal(wire.Object{{Key: "error", Value: message}})
	if err != nil {
		data = []byte(`{"error":"internal error"}`)
	}
	writeJSON(w, status, data)
}
