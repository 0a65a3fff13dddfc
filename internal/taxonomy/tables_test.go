package taxonomy

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobads/internal/core/domain"
)

func defaultTables(t *testing.T) *Tables {
	t.Helper()
	tbl, err := Default()
	require.NoError(t, err)
	return tbl
}

func TestResolveSoftwareIndustryOnMeta(t *testing.T) {
	tbl := defaultTables(t)

	res := tbl.Resolve(domain.PlatformMeta, domain.TargetingDescriptor{
		Industries: []string{"TECH_SOFTWARE_DEV"},
	})

	require.Len(t, res.Interests, 2)
	assert.Equal(t, "6003020834693", res.Interests[0].PlatformID)
	assert.Equal(t, "Software engineering", res.Interests[0].DisplayName)
	assert.Equal(t, "6003017204650", res.Interests[1].PlatformID)
	assert.Empty(t, res.Warnings)
}

// Two abstract codes resolving to the same platform ID keep one entry and
// the first display name.
func TestResolveDeduplicatesByPlatformID(t *testing.T) {
	tbl := defaultTables(t)

	res := tbl.Resolve(domain.PlatformMeta, domain.TargetingDescriptor{
		Industries:    []string{"TECH_SOFTWARE_DEV"},
		SkillKeywords: []string{"Golang", "go"},
	})

	require.Len(t, res.Interests, 2)
	assert.Equal(t, "Computer programming", res.Interests[1].DisplayName)
	assert.Equal(t, "TECH_SOFTWARE_DEV", res.Interests[1].AbstractCode)

	res = tbl.Resolve(domain.PlatformMeta, domain.TargetingDescriptor{
		SkillKeywords: []string{"golang", "GO"},
	})
	require.Len(t, res.Interests, 1)
	assert.Equal(t, "Golang", res.Interests[0].DisplayName)
}

func TestResolveSkillsAreCaseInsensitive(t *testing.T) {
	tbl := defaultTables(t)

	res := tbl.Resolve(domain.PlatformMeta, domain.TargetingDescriptor{
		SkillKeywords: []string{"  Machine   LEARNING "},
	})

	require.Len(t, res.Interests, 1)
	assert.Equal(t, "6003397425735", res.Interests[0].PlatformID)
	assert.Equal(t, "machine learning", res.Interests[0].AbstractCode)
}

func TestResolveUnmappedCodesBecomeWarnings(t *testing.T) {
	tbl := defaultTables(t)

	res := tbl.Resolve(domain.PlatformTikTok, domain.TargetingDescriptor{
		Industries:    []string{"UNDERWATER_BASKETRY"},
		SkillKeywords: []string{"cobol"},
		Seniority:     []string{"SENIORITY_SENIOR"},
		Locations:     []string{"ZZ"},
	})

	assert.Empty(t, res.Interests)
	assert.Nil(t, res.Interests)
	assert.Empty(t, res.Locations)
	assert.ElementsMatch(t, []domain.UnmappedTaxonomyWarning{
		{Platform: domain.PlatformTikTok, Dimension: domain.DimensionIndustry, Code: "UNDERWATER_BASKETRY"},
		{Platform: domain.PlatformTikTok, Dimension: domain.DimensionSkill, Code: "cobol"},
		{Platform: domain.PlatformTikTok, Dimension: domain.DimensionSeniority, Code: "SENIORITY_SENIOR"},
		{Platform: domain.PlatformTikTok, Dimension: domain.DimensionLocation, Code: "ZZ"},
	}, res.Warnings)
}

func TestResolveLocations(t *testing.T) {
	tbl := defaultTables(t)

	res := tbl.Resolve(domain.PlatformGoogle, domain.TargetingDescriptor{
		Locations: []string{"LOCATION_REMOTE", "location_ca", "REGION_NORTH_AMERICA", "de"},
	})

	assert.True(t, res.Remote)
	ids := make([]string, 0, len(res.Locations))
	for _, e := range res.Locations {
		ids = append(ids, e.PlatformID)
	}
	assert.Equal(t, []string{
		"geoTargetConstants/2124",
		"geoTargetConstants/2840",
		"geoTargetConstants/2484",
		"geoTargetConstants/2276",
	}, ids)
}

func TestResolveRegionMembersMissingOnPlatform(t *testing.T) {
	tbl := defaultTables(t)

	res := tbl.Resolve(domain.PlatformTwitter, domain.TargetingDescriptor{
		Locations: []string{"REGION_DACH"},
	})

	require.Len(t, res.Locations, 1)
	assert.Equal(t, "DE", res.Locations[0].AbstractCode)
	assert.Len(t, res.Warnings, 2)
}

func TestLocationLookup(t *testing.T) {
	tbl := defaultTables(t)

	e, ok := tbl.Location(domain.PlatformSnapchat, "us")
	require.True(t, ok)
	assert.Equal(t, "us", e.PlatformID)

	_, ok = tbl.Location(domain.PlatformTwitter, "AR")
	assert.False(t, ok)
}

func TestEveryPlatformHasATable(t *testing.T) {
	tbl := defaultTables(t)

	cov := tbl.Coverage()
	require.Len(t, cov, len(domain.Platforms()))
	for _, c := range cov {
		assert.Positive(t, c.Locations, c.Platform)
		_, ok := tbl.Location(c.Platform, domain.DefaultCountry)
		assert.True(t, ok, "%s has no default country mapping", c.Platform)
	}
	assert.Len(t, tbl.Version(), 12)
}

func TestLoadFSRejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "empty",
			fsys: fstest.MapFS{},
		},
		{
			name: "unknown platform",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("platform: myspace\n")}},
		},
		{
			name: "duplicate platform",
			fsys: fstest.MapFS{
				"a.yaml": {Data: []byte("platform: meta\n")},
				"b.yaml": {Data: []byte("platform: meta\n")},
			},
		},
		{
			name: "entry without id",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("platform: meta\nindustries:\n  TECH:\n    - {name: Tech}\n")}},
		},
		{
			name: "skill keys collide after normalising",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("platform: meta\nskills:\n  Go:\n    - {id: '1', name: Go}\n  go:\n    - {id: '1', name: Go}\n")}},
		},
		{
			name: "malformed yaml",
			fsys: fstest.MapFS{"a.yaml": {Data: []byte("platform: [meta\n")}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys)
			assert.Error(t, err)
		})
	}
}

func TestVersionTracksContent(t *testing.T) {
	a, err := LoadFS(fstest.MapFS{"meta.yaml": {Data: []byte("platform: meta\n")}})
	require.NoError(t, err)
	b, err := LoadFS(fstest.MapFS{"meta.yaml": {Data: []byte("platform: meta\nlocations:\n  US: {id: US, name: United States}\n")}})
	require.NoError(t, err)

	assert.NotEqual(t, a.Version(), b.Version())
}
