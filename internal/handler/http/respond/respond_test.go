package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
)

/* ──────────────────────────── JSON ──────────────────────────── */

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     any
		wantBody string
	}{
		{"list page", http.StatusOK, map[string]int{"total": 2}, `{"total":2}`},
		{"created", http.StatusCreated, ErrorBody{Error: "x", Kind: "conflict"}, `{"error":"x","kind":"conflict"}`},
		{"no body", http.StatusNoContent, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.body)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestJSON_UnencodableKeepsStatus(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, make(chan int))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestError_UsesErrorBody(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusTooManyRequests, errors.New("too many login attempts"))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	var body ErrorBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, ErrorBody{Error: "too many login attempts"}, body)
}

func TestInternal(t *testing.T) {
	w := httptest.NewRecorder()
	Internal(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(entity.KindValidation))
	assert.Equal(t, http.StatusConflict, StatusFor(entity.KindConflict))
	assert.Equal(t, http.StatusNotFound, StatusFor(entity.KindNotFound))
	assert.Equal(t, http.StatusPreconditionFailed, StatusFor(entity.KindPreconditionFailed))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(entity.KindInternal))
}

/* ──────────────────────────── Failure ──────────────────────────── */

func TestFailure_KindToStatus(t *testing.T) {
	taken := &entity.Error{Kind: entity.KindConflict, Field: "slug", Message: "slug is already in use"}

	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
		wantKind  string
		wantField string
	}{
		{
			name:      "validation error",
			err:       &entity.ValidationError{Field: "title", Message: "title is required"},
			wantCode:  http.StatusBadRequest,
			wantError: "title is required",
			wantKind:  "validation",
			wantField: "title",
		},
		{
			name:      "conflict with wrapped cause",
			err:       fmt.Errorf("create: %w", taken.Wrap(errors.New("pq: duplicate key value violates unique constraint"))),
			wantCode:  http.StatusConflict,
			wantError: "slug is already in use",
			wantKind:  "conflict",
			wantField: "slug",
		},
		{
			name:      "not found",
			err:       entity.ErrNotFound,
			wantCode:  http.StatusNotFound,
			wantError: "entity not found",
			wantKind:  "not_found",
		},
		{
			name:      "precondition failed",
			err:       &entity.Error{Kind: entity.KindPreconditionFailed, Message: "category in use"},
			wantCode:  http.StatusPreconditionFailed,
			wantError: "category in use",
			wantKind:  "precondition_failed",
		},
		{
			name:      "plain error is internal",
			err:       errors.New("dial tcp: postgres://app:hunter2@db:5432/news"),
			wantCode:  http.StatusInternalServerError,
			wantError: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/admin/articles", nil)
			Failure(w, r, tt.err)

			if w.Code != tt.wantCode {
				t.Fatalf("Code = %v, want %v", w.Code, tt.wantCode)
			}
			var body ErrorBody
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.wantError || body.Kind != tt.wantKind || body.Field != tt.wantField {
				t.Errorf("body = %+v, want {%s %s %s}", body, tt.wantError, tt.wantKind, tt.wantField)
			}
			if strings.Contains(w.Body.String(), "hunter2") {
				t.Errorf("response leaked a secret: %s", w.Body.String())
			}
		})
	}
}

func TestFailure_NilWritesNothing(t *testing.T) {
	w := httptest.NewRecorder()
	Failure(w, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestForbidden(t *testing.T) {
	w := httptest.NewRecorder()
	Forbidden(w)

	if w.Code != http.StatusForbidden {
		t.Fatalf("Code = %v, want 403", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"error":"forbidden"}` {
		t.Errorf("Body = %s", got)
	}
}

/* ──────────────────────────── BadBody ──────────────────────────── */

func TestBadBody(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BadBody(rec, errors.New("unexpected EOF"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid request body","kind":"validation"}`, rec.Body.String())
	})

	t.Run("over the body limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := http.MaxBytesReader(rec, io.NopCloser(strings.NewReader(`{"title":"`+strings.Repeat("x", 64)+`"}`)), 8)
		var v map[string]any
		err := json.NewDecoder(body).Decode(&v)
		require.Error(t, err)

		BadBody(rec, err)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.JSONEq(t, `{"error":"request body too large"}`, rec.Body.String())
	})
}
