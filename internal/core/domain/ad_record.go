package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle tag owned by the persistence layer. The engine
// reads it but never changes it.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPaused    Status = "paused"
	StatusArchived  Status = "archived"
)

// CreativeAsset holds handles produced by the asset-upload service. Any
// combination may be present; the compiler picks exactly one representation.
type CreativeAsset struct {
	ImageHandle  string `json:"image_handle,omitempty"`
	VideoHandle  string `json:"video_handle,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// AdRecord is the canonical, platform-agnostic job advertisement.
// DailyBudget is in major currency units.
type AdRecord struct {
	ID               string              `json:"id" validate:"required"`
	Title            string              `json:"title" validate:"required"`
	ShortDescription string              `json:"short_description,omitempty"`
	LongDescription  string              `json:"long_description,omitempty"`
	TargetURL        string              `json:"target_url" validate:"required,http_url"`
	Creative         CreativeAsset       `json:"creative_asset"`
	EnabledPlatforms []Platform          `json:"enabled_platforms,omitempty"`
	DailyBudget      decimal.NullDecimal `json:"daily_budget"`
	ScheduleStart    time.Time           `json:"schedule_start"`
	ScheduleEnd      *time.Time          `json:"schedule_end,omitempty"`
	Status           Status              `json:"status,omitempty"`
}
