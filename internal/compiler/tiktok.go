package compiler

import (
	"encoding/json"
	"time"

	"jobads/internal/core/domain"
)

// TikTok Business API shapes. Budgets are major-unit decimals here, unlike
// every other network.

type tiktokCampaign struct {
	AdvertiserID      string   `json:"advertiser_id"`
	CampaignName      string   `json:"campaign_name"`
	ObjectiveType     string   `json:"objective_type"`
	SpecialIndustries []string `json:"special_industries"`
	BudgetMode        string   `json:"budget_mode"`
	OperationStatus   string   `json:"operation_status"`
}

func (c tiktokCampaign) CampaignStatus() string { return c.OperationStatus }

type tiktokAdGroup struct {
	AdvertiserID        string      `json:"advertiser_id"`
	AdgroupName         string      `json:"adgroup_name"`
	PlacementType       string      `json:"placement_type"`
	LocationIDs         []string    `json:"location_ids"`
	InterestCategoryIDs []string    `json:"interest_category_ids,omitempty"`
	BudgetMode          string      `json:"budget_mode"`
	Budget              json.Number `json:"budget"`
	ScheduleType        string      `json:"schedule_type"`
	ScheduleStartTime   string      `json:"schedule_start_time"`
	ScheduleEndTime     string      `json:"schedule_end_time,omitempty"`
	OptimizationGoal    string      `json:"optimization_goal"`
	BillingEvent        string      `json:"billing_event"`
	OperationStatus     string      `json:"operation_status"`
}

func (g tiktokAdGroup) AdGroupStatus() string { return g.OperationStatus }

func (g tiktokAdGroup) DailyBudgetMinor() (int64, bool) {
	return minorFromMajor(g.Budget.String())
}

func (g tiktokAdGroup) Window() (time.Time, *time.Time, error) {
	return parseWindow(g.ScheduleStartTime, g.ScheduleEndTime, layoutTikTok)
}

type tiktokAd struct {
	AdvertiserID   string   `json:"advertiser_id"`
	AdName         string   `json:"ad_name"`
	AdFormat       string   `json:"ad_format"`
	AdText         string   `json:"ad_text"`
	LandingPageURL string   `json:"landing_page_url"`
	CallToAction   string   `json:"call_to_action"`
	VideoID        string   `json:"video_id,omitempty"`
	VideoCoverURL  string   `json:"video_cover_url,omitempty"`
	ImageIDs       []string `json:"image_ids,omitempty"`
}

func (a tiktokAd) Format() domain.CreativeFormat {
	switch a.AdFormat {
	case "SINGLE_VIDEO":
		return domain.CreativeVideo
	case "SINGLE_IMAGE":
		return domain.CreativeImage
	case "TEXT_LINK":
		return domain.CreativeText
	default:
		return ""
	}
}

func tiktokBackend() *Backend {
	return &Backend{
		Platform: domain.PlatformTikTok,
		Identity: []Requirement{
			{Field: "advertiser_id", Value: func(c domain.PlatformConfig) string { return c.AccountID }},
		},
		Limits:   TextLimits{Headline: 100, Body: 100},
		Campaign: tiktokBuildCampaign,
		AdGroup:  tiktokBuildAdGroup,
		Creative: tiktokBuildAd,
	}
}

func tiktokBuildCampaign(p *Plan) domain.CampaignSpec {
	return tiktokCampaign{
		AdvertiserID:      p.Config.AccountID,
		CampaignName:      p.CampaignName,
		ObjectiveType:     "TRAFFIC",
		SpecialIndustries: []string{"EMPLOYMENT"},
		BudgetMode:        "BUDGET_MODE_INFINITE",
		OperationStatus:   "DISABLE",
	}
}

func tiktokBuildAdGroup(p *Plan) domain.AdGroupSpec {
	group := tiktokAdGroup{
		AdvertiserID:      p.Config.AccountID,
		AdgroupName:       p.AdGroupName,
		PlacementType:     "PLACEMENT_TYPE_AUTOMATIC",
		LocationIDs:       platformIDs(p.Geo),
		BudgetMode:        "BUDGET_MODE_DAY",
		Budget:            json.Number(majorFromMinor(p.BudgetMinor)),
		ScheduleType:      "SCHEDULE_FROM_NOW",
		ScheduleStartTime: formatTime(p.Start, layoutTikTok),
		OptimizationGoal:  "CLICK",
		BillingEvent:      "CPC",
		OperationStatus:   "DISABLE",
	}
	if p.End != nil {
		group.ScheduleType = "SCHEDULE_START_END"
		group.ScheduleEndTime = formatTime(*p.End, layoutTikTok)
	}
	if len(p.Interests) > 0 {
		group.InterestCategoryIDs = platformIDs(p.Interests)
	}
	return group
}

func tiktokBuildAd(p *Plan) domain.CreativeSpec {
	text := p.Body
	if text == "" {
		text = p.Headline
	}
	ad := tiktokAd{
		AdvertiserID:   p.Config.AccountID,
		AdName:         p.AdName,
		AdText:         text,
		LandingPageURL: p.TargetURL,
		CallToAction:   "APPLY_NOW",
	}
	switch p.Creative.Format {
	case domain.CreativeVideo:
		ad.AdFormat = "SINGLE_VIDEO"
		ad.VideoID = p.Creative.VideoHandle
		ad.VideoCoverURL = p.Creative.ThumbnailURL
	case domain.CreativeImage:
		ad.AdFormat = "SINGLE_IMAGE"
		ad.ImageIDs = []string{p.Creative.ImageHandle}
	default:
		ad.AdFormat = "TEXT_LINK"
	}
	return ad
}
