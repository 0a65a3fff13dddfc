package httpadapter

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"jobads/internal/adapter/usecase"
	"jobads/internal/compiler"
	"jobads/internal/core/domain"
	"jobads/internal/core/port"
	"jobads/internal/core/port/mocks"
	"jobads/internal/metrics"
	"jobads/internal/taxonomy"
)

const recordJSON = `{
	"record": {
		"id": "ad-7",
		"title": "Backend Engineer",
		"short_description": "Join our payments team.",
		"target_url": "https://jobs.example.com/ad-7",
		"creative_asset": {"image_handle": "abc123"},
		"enabled_platforms": ["meta", "google"],
		"daily_budget": "25.00",
		"schedule_start": "2025-06-01T00:00:00Z"
	},
	"targeting": {
		"locations": ["LOCATION_REMOTE"],
		"industries": ["TECH_SOFTWARE_DEV"]
	}
}`

// newServer wires the real engine and use case behind the router.
func newServer(t *testing.T, cfgs map[domain.Platform]domain.PlatformConfig) *httptest.Server {
	t.Helper()
	tables, err := taxonomy.Default()
	require.NoError(t, err)
	logger := slog.New(slog.DiscardHandler)
	engine := compiler.NewEngine(taxonomy.NewStaticStore(tables), logger)
	m := metrics.New()
	svc := usecase.NewCompileUseCase(engine, nil, cfgs, m, logger)

	srv := httptest.NewServer(NewHandler(svc, logger, m).Router())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.String()
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.String()
}

func TestCompileAllPlatforms(t *testing.T) {
	srv := newServer(t, map[domain.Platform]domain.PlatformConfig{
		domain.PlatformMeta: {PageID: "page-7"},
	})

	resp, body := post(t, srv.URL+"/api/v1/compile", recordJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	assert.True(t, gjson.Get(body, "compilation_id").Exists())
	results := gjson.Get(body, "results").Array()
	require.Len(t, results, 2)

	assert.Equal(t, "google", results[0].Get("platform").String())
	assert.Equal(t, "draft", results[0].Get("stage").String())
	assert.Equal(t, "configuration_error", results[0].Get("error.kind").String())
	assert.False(t, results[0].Get("bundle").Exists())

	assert.Equal(t, "meta", results[1].Get("platform").String())
	assert.Equal(t, "validated", results[1].Get("stage").String())
	assert.Equal(t, int64(2500), results[1].Get("bundle.ad_group.daily_budget").Int())
	assert.Equal(t, "abc123", results[1].Get("bundle.creative.object_story_spec.link_data.image_hash").String())
}

func TestCompileSinglePlatform(t *testing.T) {
	srv := newServer(t, map[domain.Platform]domain.PlatformConfig{
		domain.PlatformTikTok: {AccountID: "adv-1"},
	})

	resp, body := post(t, srv.URL+"/api/v1/compile/tiktok", recordJSON)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "tiktok", gjson.Get(body, "platform").String())
	assert.Equal(t, "25.00", gjson.Get(body, "bundle.ad_group.budget").Raw)
	assert.Equal(t, "SINGLE_IMAGE", gjson.Get(body, "bundle.creative.ad_format").String())
}

func TestCompileSinglePlatformFailures(t *testing.T) {
	srv := newServer(t, map[domain.Platform]domain.PlatformConfig{
		domain.PlatformMeta: {PageID: "page-7"},
	})

	t.Run("configuration", func(t *testing.T) {
		resp, body := post(t, srv.URL+"/api/v1/compile/snapchat", recordJSON)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
		assert.Equal(t, "configuration_error", gjson.Get(body, "meta.kind").String())
		assert.True(t, gjson.Get(body, "errors.ad_account_id").Exists())
	})

	t.Run("precondition", func(t *testing.T) {
		noBudget := strings.Replace(recordJSON, `"daily_budget": "25.00",`, "", 1)
		resp, body := post(t, srv.URL+"/api/v1/compile/meta", noBudget)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "precondition_error", gjson.Get(body, "meta.kind").String())
		assert.Equal(t, "is required", gjson.Get(body, "errors.daily_budget.0").String())
	})

	t.Run("validation", func(t *testing.T) {
		backwards := strings.Replace(recordJSON,
			`"schedule_start": "2025-06-01T00:00:00Z"`,
			`"schedule_start": "2025-06-01T00:00:00Z", "schedule_end": "2025-05-01T00:00:00Z"`, 1)
		resp, body := post(t, srv.URL+"/api/v1/compile/meta", backwards)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "validation_failed", gjson.Get(body, "meta.kind").String())
		assert.Equal(t, "compiled", gjson.Get(body, "meta.stage").String())
	})

	t.Run("unknown platform", func(t *testing.T) {
		resp, _ := post(t, srv.URL+"/api/v1/compile/myspace", recordJSON)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("bad json", func(t *testing.T) {
		resp, _ := post(t, srv.URL+"/api/v1/compile/meta", "{")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCompileRejectsUnknownPlatformInBody(t *testing.T) {
	srv := newServer(t, nil)
	body := strings.Replace(recordJSON, `["meta", "google"]`, `["meta", "friendster"]`, 1)

	resp, _ := post(t, srv.URL+"/api/v1/compile", body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResolveEndpoint(t *testing.T) {
	srv := newServer(t, nil)

	resp, body := post(t, srv.URL+"/api/v1/resolve/x", `{"locations":["REGION_DACH"],"skill_keywords":["Python"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, "twitter", gjson.Get(body, "platform").String())
	assert.Equal(t, "DE", gjson.Get(body, "locations.0.abstract_code").String())
	// AT and CH have no X location entry.
	assert.Equal(t, int64(2), gjson.Get(body, "warnings.#").Int())
}

func TestTaxonomyEndpoints(t *testing.T) {
	srv := newServer(t, nil)

	resp, body := get(t, srv.URL+"/api/v1/taxonomy")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	version := gjson.Get(body, "version").String()
	assert.Len(t, version, 12)
	assert.Equal(t, int64(len(domain.Platforms())), gjson.Get(body, "coverage.#").Int())

	resp, body = post(t, srv.URL+"/api/v1/taxonomy/reload", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, version, gjson.Get(body, "version").String())

	resp, body = get(t, srv.URL+"/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, version, gjson.Get(body, "taxonomy").String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t, map[domain.Platform]domain.PlatformConfig{domain.PlatformMeta: {PageID: "p"}})
	post(t, srv.URL+"/api/v1/compile", recordJSON)

	resp, body := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `jobads_compiler_compilations_total{outcome="compiled",platform="meta"} 1`)
	assert.Contains(t, body, `route="/api/v1/compile"`)
}

func TestHistoryEndpoint(t *testing.T) {
	svc := mocks.NewMockCompileUseCase(t)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), nil)

	id := uuid.New()
	svc.EXPECT().
		History(mock.Anything, id).
		Return([]domain.CompilationEntry{{CompilationID: id, Platform: domain.PlatformMeta, Outcome: domain.OutcomeCompiled}}, nil)
	missing := uuid.New()
	svc.EXPECT().
		History(mock.Anything, missing).
		Return(nil, port.ErrCompilationNotFound)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/compilations/"+id.String(), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "meta", gjson.Get(rec.Body.String(), "0.platform").String())

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/compilations/"+missing.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/compilations/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompileNoPlatforms(t *testing.T) {
	svc := mocks.NewMockCompileUseCase(t)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), nil)

	svc.EXPECT().
		Compile(mock.Anything, mock.AnythingOfType("port.CompileReq")).
		Return(nil, errors.Join(errors.New(`ad "ad-7"`), domain.ErrNoPlatforms))

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/compile", strings.NewReader(recordJSON)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTaxonomyReloadFailure(t *testing.T) {
	svc := mocks.NewMockCompileUseCase(t)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), nil)

	svc.EXPECT().
		ReloadTaxonomy(mock.Anything).
		RunAndReturn(func(context.Context) (port.TaxonomyInfo, error) {
			return port.TaxonomyInfo{Version: "abcdefabcdef"}, errors.New("meta.yaml: duplicate code")
		})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/taxonomy/reload", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "abcdefabcdef", gjson.Get(rec.Body.String(), "meta.version").String())
}
