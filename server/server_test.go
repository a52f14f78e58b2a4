package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shibukawa/sqlflat/service"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	previous := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(previous) })

	return logs
}

func newServer(t *testing.T, processor Processor, opts Options) http.Handler {
	t.Helper()

	s, err := New(processor, opts)
	assert.NoError(t, err)

	return s.Handler()
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type countingProcessor struct {
	calls atomic.Int32
	inner Processor
}

func (p *countingProcessor) Process(body string) (service.Response, error) {
	p.calls.Add(1)
	return p.inner.Process(body)
}

type failingProcessor struct{}

func (failingProcessor) Process(string) (service.Response, error) {
	return service.Response{}, errors.New("flatten: unregistered node kind")
}

func TestParseEndpoints(t *testing.T) {
	h := newServer(t, service.NewProcessor(), Options{})

	for _, path := range []string{"/", "/parse"} {
		t.Run(path, func(t *testing.T) {
			rec := post(h, path, "SELECT 1")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.True(t, strings.HasPrefix(rec.Body.String(), `{"Tree":[{"p":"/0/0/0/0/",`), rec.Body.String())
		})
	}
}

func TestEmptyAndMetaBodies(t *testing.T) {
	h := newServer(t, service.NewProcessor(), Options{})

	rec := post(h, "/", "  ")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "{}", rec.Body.String())

	rec = post(h, "/", "META")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), `{"Keys":{`))
}

func TestSyntaxErrorsAreOK(t *testing.T) {
	h := newServer(t, service.NewProcessor(), Options{})

	rec := post(h, "/", "SELECT FROM")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"Errors":[{"m":"expected expression near 'FROM'","cd":103,"ln":1,"co":8,"of":7}]}`, rec.Body.String())
}

func TestInternalDefectIs500(t *testing.T) {
	logs := observeLogs(t)
	h := newServer(t, failingProcessor{}, Options{})

	rec := post(h, "/", "SELECT 1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, `{"error":"flatten: unregistered node kind"}`, rec.Body.String())

	failures := logs.FilterMessage("request failed").All()
	assert.Equal(t, 1, len(failures))
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
}

func TestBodyLimit(t *testing.T) {
	h := newServer(t, service.NewProcessor(), Options{MaxBodyBytes: 8})

	rec := post(h, "/", "SELECT 1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = post(h, "/", "SELECT 12345")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, `{"error":"request body exceeds 8 bytes"}`, rec.Body.String())
}

func TestResponseCache(t *testing.T) {
	processor := &countingProcessor{inner: service.NewProcessor()}
	h := newServer(t, processor, Options{CacheSize: 4})

	first := post(h, "/", "SELECT a FROM t")
	second := post(h, "/parse", "SELECT a FROM t")
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, int32(1), processor.calls.Load())

	post(h, "/", "SELECT b FROM t")
	assert.Equal(t, int32(2), processor.calls.Load())
}

func TestCacheDisabled(t *testing.T) {
	processor := &countingProcessor{inner: service.NewProcessor()}
	h := newServer(t, processor, Options{CacheSize: 0})

	post(h, "/", "SELECT 1")
	post(h, "/", "SELECT 1")
	assert.Equal(t, int32(2), processor.calls.Load())
}

func TestHealth(t *testing.T) {
	h := newServer(t, service.NewProcessor(), Options{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	h := newServer(t, service.NewProcessor(), Options{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/parse", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAccessLogAndRequestID(t *testing.T) {
	logs := observeLogs(t)
	h := newServer(t, service.NewProcessor(), Options{})

	rec := post(h, "/", "SELECT 1")
	id := rec.Header().Get(HeaderRequestID)
	assert.NotEqual(t, "", id)

	entries := logs.FilterMessage("request").All()
	assert.Equal(t, 1, len(entries))
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"].(string))
	assert.Equal(t, "/", fields["path"].(string))
	assert.Equal(t, int64(http.StatusOK), fields["status"].(int64))
	assert.Equal(t, id, fields["request_id"].(string))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("SELECT 1"))
	req.Header.Set(HeaderRequestID, "given-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get(HeaderRequestID))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, err := New(service.NewProcessor(), Options{})
	assert.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Serve(ctx, ln, time.Second)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
