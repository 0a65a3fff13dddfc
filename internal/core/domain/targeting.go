package domain

// LocationRemote is the pseudo location code for remote postings.
const LocationRemote = "LOCATION_REMOTE"

// TargetingDescriptor is the canonical audience specification. Skill
// keywords are matched case-insensitively.
type TargetingDescriptor struct {
	Locations     []string `json:"locations,omitempty"`
	Industries    []string `json:"industries,omitempty"`
	SkillKeywords []string `json:"skill_keywords,omitempty"`
	Seniority     []string `json:"seniority,omitempty"`
}

// Dimension names a targeting dimension of the descriptor.
type Dimension string

const (
	DimensionIndustry  Dimension = "industry"
	DimensionSkill     Dimension = "skill"
	DimensionSeniority Dimension = "seniority"
	DimensionLocation  Dimension = "location"
)

// TaxonomyEntry is one abstract code resolved into a platform namespace.
type TaxonomyEntry struct {
	AbstractCode string    `json:"abstract_code"`
	Dimension    Dimension `json:"dimension"`
	PlatformID   string    `json:"platform_id"`
	DisplayName  string    `json:"display_name"`
}

// UnmappedTaxonomyWarning reports a code the platform table has no entry
// for. It is informational and never changes the compilation outcome.
type UnmappedTaxonomyWarning struct {
	Platform  Platform  `json:"platform"`
	Dimension Dimension `json:"dimension"`
	Code      string    `json:"code"`
}

// ResolvedTargeting is the output of the taxonomy pass for one platform.
// Interests is the single deduplicated targeting group; Locations holds
// resolved concrete geo entries. Remote is set when the descriptor named
// LocationRemote.
type ResolvedTargeting struct {
	Platform  Platform                  `json:"platform"`
	Interests []TaxonomyEntry           `json:"interests"`
	Locations []TaxonomyEntry           `json:"locations"`
	Remote    bool                      `json:"remote"`
	Warnings  []UnmappedTaxonomyWarning `json:"warnings,omitempty"`
}

// TaxonomyCoverage reports how many codes each dimension maps for a
// platform.
type TaxonomyCoverage struct {
	Platform   Platform `json:"platform"`
	Industries int      `json:"industries"`
	Skills     int      `json:"skills"`
	Seniority  int      `json:"seniority"`
	Locations  int      `json:"locations"`
}
