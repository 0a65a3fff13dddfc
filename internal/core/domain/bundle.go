package domain

import "time"

// CreativeFormat is the single representation a creative was compiled to.
// The zero value means the creative carries nothing publishable.
type CreativeFormat string

const (
	CreativeVideo CreativeFormat = "video"
	CreativeImage CreativeFormat = "image"
	CreativeText  CreativeFormat = "text"
)

// CampaignSpec is a compiled, platform-shaped campaign object.
type CampaignSpec interface {
	CampaignStatus() string
}

// AdGroupSpec is a compiled ad set / ad group / line item / ad squad.
type AdGroupSpec interface {
	AdGroupStatus() string
	// DailyBudgetMinor reports the daily budget in minor currency units.
	// exact is false when the wire value does not correspond to a whole
	// number of minor units.
	DailyBudgetMinor() (units int64, exact bool)
	// Window parses the schedule back out of the wire fields.
	Window() (start time.Time, end *time.Time, err error)
}

// CreativeSpec is a compiled creative object.
type CreativeSpec interface {
	Format() CreativeFormat
}

// Bundle is the compiled output for one (record, platform) pair. All three
// sub-specs are present whenever a bundle is returned.
type Bundle struct {
	Platform Platform     `json:"platform"`
	Campaign CampaignSpec `json:"campaign"`
	AdGroup  AdGroupSpec  `json:"ad_group"`
	Creative CreativeSpec `json:"creative"`
}

// Stage is how far a record got through the engine.
type Stage string

const (
	StageDraft     Stage = "draft"
	StageCompiled  Stage = "compiled"
	StageValidated Stage = "validated"
)

// Result is the outcome of compiling one record for one platform. Exactly
// one of Bundle and Err is set.
type Result struct {
	Platform Platform
	Stage    Stage
	Bundle   *Bundle
	Err      error
	Warnings []UnmappedTaxonomyWarning
}

// OK reports whether the compilation produced a validated bundle.
func (r Result) OK() bool {
	return r.Err == nil && r.Bundle != nil
}
