package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
)

type textDownload struct{ body string }

func (textDownload) ContentType() string { return "text/csv" }
func (textDownload) Filename() string    { return "statement.csv" }
func (d textDownload) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.body)
	return int64(n), err
}

type pagedResponse struct {
	Items []string `json:"items"`
}

func (pagedResponse) Meta() map[string]any { return map[string]any{"total": 2} }

func serve(t *testing.T, ro *Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouterHealthAndNotFound(t *testing.T) {
	ro := NewRouter(&staticGenerator{value: "cid"})

	if rec := serve(t, ro, "/health"); rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	if rec := serve(t, ro, "/missing"); rec.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d", rec.Code)
	}
}

func TestRouterEnvelopeAndMeta(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/items", func(ctx context.Context, r *http.Request) (any, error) {
		return pagedResponse{Items: []string{"a", "b"}}, nil
	})

	rec := serve(t, ro, "/items")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var env struct {
		Message string         `json:"message"`
		Data    pagedResponse  `json:"data"`
		Meta    map[string]any `json:"meta"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Items) != 2 || env.Meta["total"] != float64(2) {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestRouterMapsErrors(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/conflict", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, pkgerror.NewBusinessError(errors.New("insufficient balance"), pkgerror.CodeConflict)
	})
	ro.GET("/plain", func(ctx context.Context, r *http.Request) (any, error) {
		return nil, errors.New("raw")
	})

	rec := serve(t, ro, "/conflict")
	if rec.Code != http.StatusConflict {
		t.Fatalf("conflict status = %d", rec.Code)
	}
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "insufficient balance" || body.Error["code"] != "ERROR_CODE_CONFLICT" {
		t.Fatalf("unexpected error body: %+v", body)
	}

	if rec := serve(t, ro, "/plain"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("plain status = %d", rec.Code)
	}
}

func TestRouterStreamsDownload(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/export", func(ctx context.Context, r *http.Request) (any, error) {
		return textDownload{body: "id,amount\n1,40\n"}, nil
	})

	rec := serve(t, ro, "/export")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("content type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, `filename="statement.csv"`) {
		t.Fatalf("content disposition = %q", got)
	}
	if got := rec.Body.String(); got != "id,amount\n1,40\n" {
		t.Fatalf("body = %q", got)
	}
}

func TestRouterRecoversPanics(t *testing.T) {
	ro := NewRouter(nil)
	ro.GET("/panic", func(ctx context.Context, r *http.Request) (any, error) {
		panic("boom")
	})

	if rec := serve(t, ro, "/panic"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}
