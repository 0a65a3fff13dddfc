// Package compiler turns a canonical ad record and its resolved targeting
// into the payload bundle of one advertising network.
//
// Every network runs the same pipeline: configuration gate, precondition
// gate, unit conversion, geo anchoring, targeting build-or-omit and creative
// selection. What differs is captured by a Backend: the identity fields a
// network needs, its text limits and the three builders that shape the
// neutral Plan into the network's wire structures.
package compiler

import (
	"fmt"
	"strings"
	"time"

	"jobads/internal/core/domain"
	"jobads/internal/taxonomy"
)

// Requirement is a platform config field a network needs to publish.
type Requirement struct {
	// Field is the network's name for the identity, e.g. "page_id".
	Field string
	Value func(domain.PlatformConfig) string
}

// TextLimits are maximum lengths in runes. Zero means unlimited.
type TextLimits struct {
	Headline    int
	Body        int
	Description int
	Brand       int
}

// Backend is the schema mapping of one network.
type Backend struct {
	Platform domain.Platform
	Identity []Requirement
	Limits   TextLimits

	Campaign func(p *Plan) domain.CampaignSpec
	AdGroup  func(p *Plan) domain.AdGroupSpec
	Creative func(p *Plan) domain.CreativeSpec
}

// CreativeChoice is the single representation picked for the creative.
type CreativeChoice struct {
	Format       domain.CreativeFormat
	VideoHandle  string
	ThumbnailURL string
	ImageHandle  string
}

// Plan is the platform-neutral result of the shared passes. Builders read
// it and never modify it.
type Plan struct {
	Platform domain.Platform
	Config   domain.PlatformConfig
	RecordID string

	CampaignName string
	AdGroupName  string
	AdName       string

	// Title is the untruncated ad title; Headline, Body and Description
	// are already cut to the backend's limits.
	Title       string
	Headline    string
	Body        string
	Description string
	BrandName   string
	TargetURL   string

	BudgetMinor int64
	Start       time.Time
	End         *time.Time

	// Geo is never empty. Interests is nil when nothing resolved and the
	// builders must then omit their targeting structure.
	Geo       []domain.TaxonomyEntry
	Interests []domain.TaxonomyEntry

	Creative CreativeChoice
}

// Compiler compiles records for one network against one taxonomy snapshot.
type Compiler struct {
	backend *Backend
	tables  *taxonomy.Tables
}

// New returns a compiler for backend using the given tables for geo
// anchoring.
func New(backend *Backend, tables *taxonomy.Tables) Compiler {
	return Compiler{backend: backend, tables: tables}
}

// Compile builds the bundle for rec. It fails with *domain.ConfigurationError
// when the platform identity or the default geo anchor is unusable, and with
// *domain.PreconditionError when the record is incomplete. The returned
// bundle always carries all three sub-specs.
func (c Compiler) Compile(rec domain.AdRecord, rt domain.ResolvedTargeting, cfg domain.PlatformConfig) (*domain.Bundle, error) {
	b := c.backend
	for _, req := range b.Identity {
		if strings.TrimSpace(req.Value(cfg)) == "" {
			return nil, &domain.ConfigurationError{Platform: b.Platform, Field: req.Field, Reason: "is required to publish"}
		}
	}

	var anchor *domain.TaxonomyEntry
	if rt.Remote || len(rt.Locations) == 0 {
		e, ok := c.tables.Location(b.Platform, cfg.Anchor())
		if !ok {
			return nil, &domain.ConfigurationError{
				Platform: b.Platform,
				Field:    "default_country",
				Reason:   fmt.Sprintf("%s has no location mapping", cfg.Anchor()),
			}
		}
		anchor = &e
	}

	if issues := checkPreconditions(rec); len(issues) > 0 {
		return nil, &domain.PreconditionError{Platform: b.Platform, Fields: issues}
	}

	p := c.plan(rec, rt, cfg, anchor)
	return &domain.Bundle{
		Platform: b.Platform,
		Campaign: b.Campaign(p),
		AdGroup:  b.AdGroup(p),
		Creative: b.Creative(p),
	}, nil
}

func (c Compiler) plan(rec domain.AdRecord, rt domain.ResolvedTargeting, cfg domain.PlatformConfig, anchor *domain.TaxonomyEntry) *Plan {
	lim := c.backend.Limits

	geo := make([]domain.TaxonomyEntry, 0, len(rt.Locations)+1)
	geo = append(geo, rt.Locations...)
	if anchor != nil && !containsID(geo, anchor.PlatformID) {
		geo = append(geo, *anchor)
	}

	var interests []domain.TaxonomyEntry
	if len(rt.Interests) > 0 {
		interests = append(interests, rt.Interests...)
	}

	brand := strings.TrimSpace(cfg.BrandName)
	if brand == "" {
		brand = rec.Title
	}

	return &Plan{
		Platform:     c.backend.Platform,
		Config:       cfg,
		RecordID:     rec.ID,
		CampaignName: fmt.Sprintf("Job Ad: %s - Campaign - %s", rec.Title, rec.ID),
		AdGroupName:  fmt.Sprintf("Job Ad: %s - Ad Set - %s", rec.Title, rec.ID),
		AdName:       fmt.Sprintf("Job Ad: %s - Ad - %s", rec.Title, rec.ID),
		Title:        rec.Title,
		Headline:     truncate(rec.Title, lim.Headline),
		Body:         truncate(rec.ShortDescription, lim.Body),
		Description:  truncate(rec.LongDescription, lim.Description),
		BrandName:    truncate(brand, lim.Brand),
		TargetURL:    strings.TrimSpace(rec.TargetURL),
		BudgetMinor:  MinorUnits(rec.DailyBudget.Decimal),
		Start:        rec.ScheduleStart.UTC(),
		End:          utcPtr(rec.ScheduleEnd),
		Geo:          geo,
		Interests:    interests,
		Creative:     chooseCreative(rec.Creative),
	}
}

// chooseCreative applies the fixed priority: video with thumbnail, then
// image, then text only.
func chooseCreative(a domain.CreativeAsset) CreativeChoice {
	video := strings.TrimSpace(a.VideoHandle)
	thumb := strings.TrimSpace(a.ThumbnailURL)
	image := strings.TrimSpace(a.ImageHandle)
	switch {
	case video != "" && thumb != "":
		return CreativeChoice{Format: domain.CreativeVideo, VideoHandle: video, ThumbnailURL: thumb}
	case image != "":
		return CreativeChoice{Format: domain.CreativeImage, ImageHandle: image}
	default:
		return CreativeChoice{Format: domain.CreativeText}
	}
}

func containsID(entries []domain.TaxonomyEntry, id string) bool {
	for _, e := range entries {
		if e.PlatformID == id {
			return true
		}
	}
	return false
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// platformIDs projects entries onto their platform IDs.
func platformIDs(entries []domain.TaxonomyEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.PlatformID)
	}
	return ids
}
