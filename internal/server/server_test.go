package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shinyyama/astro-edit-backend/internal/config"
	"github.com/shinyyama/astro-edit-backend/internal/reqctx"
	"github.com/shinyyama/astro-edit-backend/internal/service"
)

type ridService struct {
	rid string
}

func (s *ridService) Process(ctx context.Context, _ service.ProcessInput) (*service.ProcessResult, error) {
	s.rid = reqctx.RID(ctx)
	return &service.ProcessResult{Image: []byte("x"), MimeType: "image/png"}, nil
}

func testConfig() *config.Config {
	return &config.Config{MaxUploadMB: 1, AllowedOriginSuffixes: []string{"vercel.app"}, GitSHA: "abc"}
}

func TestHealthz(t *testing.T) {
	srv := New(testConfig(), &ridService{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["git_sha"] != "abc" {
		t.Fatalf("body=%v", body)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("request id header missing")
	}
}

func TestPresetsRoute(t *testing.T) {
	srv := New(testConfig(), &ridService{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestProcessRouteMissingFile(t *testing.T) {
	svc := &ridService{}
	srv := New(testConfig(), svc)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/process", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestOriginAllowed(t *testing.T) {
	allow := originAllowed([]string{"vercel.app", " example.org "})
	tests := []struct {
		origin string
		want   bool
	}{
		{"http://localhost:5173", true},
		{"https://127.0.0.1:3000", true},
		{"https://astro-edit.vercel.app", true},
		{"https://photos.example.org", true},
		{"https://evil.com", false},
		{"https://evilvercel.app", false},
		{"https://vercel.app", true},
		{"https://a.b.EXAMPLE.org", true},
		{"ftp://astro.vercel.app", false},
	}
	for _, tt := range tests {
		got, err := allow(tt.origin)
		if err != nil || got != tt.want {
			t.Fatalf("origin=%s got=%v err=%v", tt.origin, got, err)
		}
	}
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status=%d want %d body=%s", rec.Code, status, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body=%s: %v", rec.Body.String(), err)
	}
	if msg, _ := body["error"].(string); msg == "" {
		t.Fatalf("missing error field: %s", rec.Body.String())
	}
	if _, ok := body["message"]; ok {
		t.Fatalf("unexpected message field: %s", rec.Body.String())
	}
}

func TestProcessRouteOversizeUpload(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", "stack.png")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write(bytes.Repeat([]byte{0xAB}, 2<<20))
	_ = w.WriteField("params", `{}`)
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/process", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	New(testConfig(), &ridService{}).Handler().ServeHTTP(rec, req)
	assertErrorBody(t, rec, http.StatusRequestEntityTooLarge)
}

func TestRoutingErrorsUseErrorBody(t *testing.T) {
	srv := New(testConfig(), &ridService{})
	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/process", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assertErrorBody(t, rec, tt.status)
	}
}
