package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobads/internal/core/domain"
)

func TestObserveResults(t *testing.T) {
	c := New()
	c.ObserveResults([]domain.Result{
		{
			Platform: domain.PlatformMeta,
			Bundle:   &domain.Bundle{},
			Warnings: []domain.UnmappedTaxonomyWarning{
				{Platform: domain.PlatformMeta, Dimension: domain.DimensionSkill, Code: "cobol"},
			},
		},
		{Platform: domain.PlatformGoogle, Err: &domain.ConfigurationError{Platform: domain.PlatformGoogle}},
	}, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.compilations.WithLabelValues("meta", domain.OutcomeCompiled)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.compilations.WithLabelValues("google", domain.OutcomeConfigurationError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.unmapped.WithLabelValues("meta", "skill")))
}

func TestObserveReload(t *testing.T) {
	c := New()
	c.ObserveReload(nil)
	c.ObserveReload(errors.New("bad yaml"))
	c.ObserveReload(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.reloads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reloads.WithLabelValues("error")))
}

func TestHandler(t *testing.T) {
	c := New()
	c.ObserveReload(nil)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "jobads_taxonomy_reloads_total"))
}

func TestMiddleware(t *testing.T) {
	c := New()
	h := c.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anything", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "unmatched", "418")))
}
