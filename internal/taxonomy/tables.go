package taxonomy

import (
	"sort"
	"strings"

	"jobads/internal/core/domain"
)

// entry is one (platformID, displayName) pair of a table.
type entry struct {
	ID   string
	Name string
}

// platformTable holds every lookup table of one network. Skill keys are
// stored lower-cased.
type platformTable struct {
	industries map[string][]entry
	skills     map[string][]entry
	seniority  map[string][]entry
	locations  map[string]entry
}

// Tables is an immutable snapshot of all taxonomy tables. A snapshot is
// never modified after Load returns it; reloads build a new one.
type Tables struct {
	version   string
	platforms map[domain.Platform]*platformTable
	regions   map[string][]string
}

// Version is a content hash of the files the tables were built from.
func (t *Tables) Version() string { return t.version }

// Coverage returns per-platform table sizes in a stable order.
func (t *Tables) Coverage() []domain.TaxonomyCoverage {
	out := make([]domain.TaxonomyCoverage, 0, len(t.platforms))
	for p, tbl := range t.platforms {
		out = append(out, domain.TaxonomyCoverage{
			Platform:   p,
			Industries: len(tbl.industries),
			Skills:     len(tbl.skills),
			Seniority:  len(tbl.seniority),
			Locations:  len(tbl.locations),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out
}

// Resolve maps the descriptor into the platform's identifier namespace.
// Unmapped codes are dropped and reported as warnings. Interests are
// deduplicated by platform ID across all dimensions, keeping the first
// display name seen; locations are deduplicated the same way.
func (t *Tables) Resolve(p domain.Platform, d domain.TargetingDescriptor) domain.ResolvedTargeting {
	res := domain.ResolvedTargeting{Platform: p}
	tbl := t.platforms[p]
	if tbl == nil {
		tbl = &platformTable{}
	}

	group := newGroup()
	lookup := func(dim domain.Dimension, table map[string][]entry, codes []string, normalise func(string) string) {
		for _, raw := range codes {
			code := normalise(raw)
			if code == "" {
				continue
			}
			entries, ok := table[code]
			if !ok || len(entries) == 0 {
				res.Warnings = append(res.Warnings, domain.UnmappedTaxonomyWarning{Platform: p, Dimension: dim, Code: code})
				continue
			}
			for _, e := range entries {
				group.add(domain.TaxonomyEntry{AbstractCode: code, Dimension: dim, PlatformID: e.ID, DisplayName: e.Name})
			}
		}
	}
	lookup(domain.DimensionIndustry, tbl.industries, d.Industries, strings.TrimSpace)
	lookup(domain.DimensionSkill, tbl.skills, d.SkillKeywords, normaliseSkill)
	lookup(domain.DimensionSeniority, tbl.seniority, d.Seniority, strings.TrimSpace)
	res.Interests = group.entries

	geo := newGroup()
	for _, raw := range d.Locations {
		code := normaliseLocation(raw)
		switch {
		case code == "":
			continue
		case code == "REMOTE":
			res.Remote = true
			continue
		}
		countries, isRegion := t.regions[code]
		if !isRegion {
			countries = []string{code}
		}
		for _, country := range countries {
			e, ok := tbl.locations[country]
			if !ok {
				res.Warnings = append(res.Warnings, domain.UnmappedTaxonomyWarning{Platform: p, Dimension: domain.DimensionLocation, Code: country})
				continue
			}
			geo.add(domain.TaxonomyEntry{AbstractCode: country, Dimension: domain.DimensionLocation, PlatformID: e.ID, DisplayName: e.Name})
		}
	}
	res.Locations = geo.entries
	return res
}

// Location resolves a single country code for the platform.
func (t *Tables) Location(p domain.Platform, country string) (domain.TaxonomyEntry, bool) {
	tbl := t.platforms[p]
	if tbl == nil {
		return domain.TaxonomyEntry{}, false
	}
	code := normaliseLocation(country)
	e, ok := tbl.locations[code]
	if !ok {
		return domain.TaxonomyEntry{}, false
	}
	return domain.TaxonomyEntry{AbstractCode: code, Dimension: domain.DimensionLocation, PlatformID: e.ID, DisplayName: e.Name}, true
}

func normaliseSkill(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// normaliseLocation accepts "us", "US" and "LOCATION_US" alike.
func normaliseLocation(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.TrimPrefix(s, "LOCATION_")
}

// group collects entries deduplicated by platform ID in insertion order.
type group struct {
	seen    map[string]struct{}
	entries []domain.TaxonomyEntry
}

func newGroup() *group {
	return &group{seen: make(map[string]struct{})}
}

func (g *group) add(e domain.TaxonomyEntry) {
	if _, dup := g.seen[e.PlatformID]; dup {
		return
	}
	g.seen[e.PlatformID] = struct{}{}
	g.entries = append(g.entries, e)
}
