package compiler

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"jobads/internal/core/domain"
	"jobads/internal/taxonomy"
	"jobads/internal/validation"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return NewEngine(taxonomy.NewStaticStore(defaultTables(t)), slog.New(slog.DiscardHandler), opts...)
}

func TestEngine_MetaEndToEnd(t *testing.T) {
	e := newTestEngine(t)
	desc := domain.TargetingDescriptor{
		Locations:  []string{domain.LocationRemote},
		Industries: []string{"TECH_SOFTWARE_DEV"},
	}

	res := e.Compile(testRecord(), desc, domain.PlatformMeta, domain.PlatformConfig{PageID: "page-1"})
	require.NoError(t, res.Err)
	require.True(t, res.OK())
	assert.Equal(t, domain.StageValidated, res.Stage)
	assert.Empty(t, res.Warnings)

	raw, err := json.Marshal(res.Bundle)
	require.NoError(t, err)
	doc := string(raw)

	assert.Equal(t, "meta", gjson.Get(doc, "platform").String())
	assert.Equal(t, "OUTCOME_TRAFFIC", gjson.Get(doc, "campaign.objective").String())
	assert.Equal(t, "PAUSED", gjson.Get(doc, "campaign.status").String())
	assert.Equal(t, "PAUSED", gjson.Get(doc, "ad_group.status").String())
	assert.Equal(t, int64(2500), gjson.Get(doc, "ad_group.daily_budget").Int())
	assert.Equal(t, `["US"]`, gjson.Get(doc, "ad_group.targeting.geo_locations.countries").Raw)
	assert.Equal(t,
		`["6003020834693","6003017204650"]`,
		gjson.Get(doc, "ad_group.targeting.flexible_spec.0.interests.#.id").Raw)
	assert.Equal(t, "page-1", gjson.Get(doc, "creative.object_story_spec.page_id").String())
	assert.Equal(t, "abc123", gjson.Get(doc, "creative.object_story_spec.link_data.image_hash").String())
	assert.Equal(t, "https://jobs.example.com/ad-123", gjson.Get(doc, "creative.object_story_spec.link_data.link").String())
	assert.False(t, gjson.Get(doc, "creative.object_story_spec.video_data").Exists())
}

func TestEngine_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	desc := domain.TargetingDescriptor{
		Locations:     []string{"REGION_EUROPE", domain.LocationRemote},
		Industries:    []string{"TECH_SOFTWARE_DEV", "FINANCE"},
		SkillKeywords: []string{"Python", "sql"},
		Seniority:     []string{"SENIORITY_MANAGER"},
	}
	for p, cfg := range testConfigs() {
		t.Run(string(p), func(t *testing.T) {
			first := e.Compile(testRecord(), desc, p, cfg)
			second := e.Compile(testRecord(), desc, p, cfg)
			require.NoError(t, first.Err)
			require.NoError(t, second.Err)

			assert.Empty(t, cmp.Diff(decode(t, first.Bundle), decode(t, second.Bundle)))
			assert.Empty(t, cmp.Diff(first.Warnings, second.Warnings))
		})
	}
}

func decode(t *testing.T, b *domain.Bundle) map[string]any {
	t.Helper()
	raw, err := json.Marshal(b)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestEngine_ScheduleEndBeforeStart(t *testing.T) {
	e := newTestEngine(t)
	rec := testRecord()
	rec.ScheduleStart = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	rec.ScheduleEnd = &end

	for p, cfg := range testConfigs() {
		t.Run(string(p), func(t *testing.T) {
			res := e.Compile(rec, domain.TargetingDescriptor{}, p, cfg)
			assert.Nil(t, res.Bundle)
			assert.Equal(t, domain.StageCompiled, res.Stage)

			var valErr *domain.ValidationError
			require.ErrorAs(t, res.Err, &valErr)
			require.Len(t, valErr.Failures, 1)
			assert.Equal(t, validation.CodeScheduleEnd, valErr.Failures[0].Code)
		})
	}
}

func TestEngine_UnmappedCodesWarnOnly(t *testing.T) {
	e := newTestEngine(t)
	desc := domain.TargetingDescriptor{
		Industries:    []string{"TECH_SOFTWARE_DEV", "SPACE_PIRACY"},
		SkillKeywords: []string{"brainf"},
	}

	res := e.Compile(testRecord(), desc, domain.PlatformMeta, testConfigs()[domain.PlatformMeta])
	require.True(t, res.OK())
	assert.ElementsMatch(t, []domain.UnmappedTaxonomyWarning{
		{Platform: domain.PlatformMeta, Dimension: domain.DimensionIndustry, Code: "SPACE_PIRACY"},
		{Platform: domain.PlatformMeta, Dimension: domain.DimensionSkill, Code: "brainf"},
	}, res.Warnings)
}

func TestEngine_FailuresStayAtDraft(t *testing.T) {
	e := newTestEngine(t)

	res := e.Compile(testRecord(), domain.TargetingDescriptor{}, domain.PlatformSnapchat, domain.PlatformConfig{})
	assert.Equal(t, domain.StageDraft, res.Stage)
	assert.Nil(t, res.Bundle)
	assert.ErrorIs(t, res.Err, domain.ErrConfiguration)

	res = e.Compile(testRecord(), domain.TargetingDescriptor{}, domain.Platform("myspace"), domain.PlatformConfig{})
	assert.ErrorIs(t, res.Err, domain.ErrConfiguration)
}

func TestEngine_BudgetGateOnEveryPlatform(t *testing.T) {
	e := newTestEngine(t)
	budgets := map[string]decimal.NullDecimal{
		"absent":   {},
		"zero":     decimal.NewNullDecimal(decimal.Zero),
		"overflow": decimal.NewNullDecimal(decimal.RequireFromString("184467440737095516.17")),
	}
	for name, budget := range budgets {
		t.Run(name, func(t *testing.T) {
			rec := testRecord()
			rec.DailyBudget = budget

			results, err := e.CompileAll(context.Background(), rec, domain.TargetingDescriptor{}, domain.Platforms(), testConfigs())
			require.NoError(t, err)
			require.Len(t, results, len(domain.Platforms()))
			for _, res := range results {
				assert.ErrorIs(t, res.Err, domain.ErrPrecondition, res.Platform)
				assert.Nil(t, res.Bundle, res.Platform)
				assert.Equal(t, domain.StageDraft, res.Stage, res.Platform)
			}
		})
	}
}

func TestEngine_CompileAll(t *testing.T) {
	e := newTestEngine(t, WithConcurrency(2))
	rec := testRecord()
	rec.EnabledPlatforms = []domain.Platform{domain.PlatformTikTok, domain.PlatformGoogle, domain.PlatformMeta, domain.PlatformMeta}
	cfgs := testConfigs()
	delete(cfgs, domain.PlatformGoogle)

	results, err := e.CompileAll(context.Background(), rec, domain.TargetingDescriptor{}, nil, cfgs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, domain.PlatformGoogle, results[0].Platform)
	assert.ErrorIs(t, results[0].Err, domain.ErrConfiguration)
	assert.Equal(t, domain.PlatformMeta, results[1].Platform)
	assert.True(t, results[1].OK())
	assert.Equal(t, domain.PlatformTikTok, results[2].Platform)
	assert.True(t, results[2].OK())
}

func TestEngine_CompileAllExplicitPlatforms(t *testing.T) {
	e := newTestEngine(t)

	results, err := e.CompileAll(context.Background(), testRecord(), domain.TargetingDescriptor{}, []domain.Platform{domain.PlatformTwitter}, testConfigs())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.PlatformTwitter, results[0].Platform)
}

func TestEngine_CompileAllNoPlatforms(t *testing.T) {
	e := newTestEngine(t)
	rec := testRecord()
	rec.EnabledPlatforms = nil

	_, err := e.CompileAll(context.Background(), rec, domain.TargetingDescriptor{}, nil, testConfigs())
	assert.ErrorIs(t, err, domain.ErrNoPlatforms)
}

func TestEngine_CompileAllCancelled(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.CompileAll(ctx, testRecord(), domain.TargetingDescriptor{}, nil, testConfigs())
	assert.ErrorIs(t, err, context.Canceled)
}
