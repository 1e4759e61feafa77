package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cayley/internal/httpapi"
	"github.com/katalvlaran/cayley/internal/logging"
)

const z3 = `{
  "elements": ["0", "1", "2"],
  "add": [["0","1","2"],["1","2","0"],["2","0","1"]],
  "mul": [["0","0","0"],["0","1","2"],["0","2","1"]]
}`

func newHandler(t *testing.T, maxElements int) http.Handler {
	t.Helper()
	s := httpapi.NewServer(httpapi.Options{
		Logger:      logging.NewNop(),
		MaxElements: maxElements,
		Parallel:    2,
	})

	return s.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestAnalyze_OK(t *testing.T) {
	rec := do(t, newHandler(t, 0), http.MethodPost, "/analyze", z3)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got struct {
		Classification struct {
			Field struct {
				Verdict string `json:"verdict"`
			} `json:"field"`
			Insight string `json:"insight"`
		} `json:"classification"`
		AdditiveIdentity       *string     `json:"additive_identity"`
		MultiplicativeIdentity *string     `json:"multiplicative_identity"`
		UnitGraph              interface{} `json:"unit_graph"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "holds", got.Classification.Field.Verdict)
	assert.Equal(t, "This is a finite field.", got.Classification.Insight)
	require.NotNil(t, got.AdditiveIdentity)
	assert.Equal(t, "0", *got.AdditiveIdentity)
	require.NotNil(t, got.MultiplicativeIdentity)
	assert.Equal(t, "1", *got.MultiplicativeIdentity)
	assert.NotNil(t, got.UnitGraph)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		max  int
		want int
	}{
		{"malformed json", `{"elements":`, 0, http.StatusBadRequest},
		{"missing tables", `{"elements":["0"]}`, 0, http.StatusBadRequest},
		{"empty label", `{"elements":["0",""],"add":[["0"]],"mul":[["0"]]}`, 0, http.StatusBadRequest},
		{"duplicate", `{"elements":["0","0"],"add":[["0","0"],["0","0"]],"mul":[["0","0"],["0","0"]]}`, 0, http.StatusBadRequest},
		{"unknown label", `{"elements":["0","1"],"add":[["0","1"],["1","9"]],"mul":[["0","0"],["0","1"]]}`, 0, http.StatusBadRequest},
		{"ragged", `{"elements":["0","1"],"add":[["0","1"],["1"]],"mul":[["0","0"],["0","1"]]}`, 0, http.StatusBadRequest},
		{"too many elements", z3, 2, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, newHandler(t, tc.max), http.MethodPost, "/analyze", tc.body)
			assert.Equal(t, tc.want, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, rec.Header().Get(httpapi.RequestIDHeader), body["request_id"])
		})
	}
}

func TestHealthz(t *testing.T) {
	rec := do(t, newHandler(t, 0), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetrics(t *testing.T) {
	h := newHandler(t, 0)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/analyze", z3).Code)
	require.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/analyze", `nope`).Code)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `cayley_analysis_total{class="field"} 1`)
	assert.Contains(t, out, `cayley_analysis_rejected_total{reason="decode"} 1`)
	assert.Contains(t, out, "cayley_analysis_duration_seconds_count 1")

	// A second server gets its own registry.
	rec = do(t, newHandler(t, 0), http.MethodGet, "/metrics", "")
	assert.NotContains(t, rec.Body.String(), `class="field"`)
}

func TestRequestID(t *testing.T) {
	h := newHandler(t, 0)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	_, err := uuid.Parse(rec.Header().Get(httpapi.RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(httpapi.RequestIDHeader, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(httpapi.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(httpapi.RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(httpapi.RequestIDHeader))
}

func TestCORS(t *testing.T) {
	rec := do(t, newHandler(t, 0), http.MethodOptions, "/analyze", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
