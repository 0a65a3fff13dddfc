package compiler

import (
	"time"

	"jobads/internal/core/domain"
)

// Snapchat Marketing API shapes: campaign, ad squad and creative.

type snapCampaign struct {
	AdAccountID string          `json:"ad_account_id"`
	Name        string          `json:"name"`
	Status      string          `json:"status"`
	Objective   string          `json:"objective"`
	Regulations snapRegulations `json:"regulations"`
}

type snapRegulations struct {
	RestrictedDeliverySignals bool `json:"restricted_delivery_signals"`
}

func (c snapCampaign) CampaignStatus() string { return c.Status }

type snapAdSquad struct {
	Name             string        `json:"name"`
	Status           string        `json:"status"`
	Type             string        `json:"type"`
	PlacementV2      snapPlacement `json:"placement_v2"`
	OptimizationGoal string        `json:"optimization_goal"`
	BillingEvent     string        `json:"billing_event"`
	AutoBid          bool          `json:"auto_bid"`
	DailyBudgetMicro int64         `json:"daily_budget_micro"`
	StartTime        string        `json:"start_time"`
	EndTime          string        `json:"end_time,omitempty"`
	Targeting        snapTargeting `json:"targeting"`
}

type snapPlacement struct {
	Config string `json:"config"`
}

type snapTargeting struct {
	Geos      []snapGeo      `json:"geos"`
	Interests []snapInterest `json:"interests,omitempty"`
}

type snapGeo struct {
	CountryCode string `json:"country_code"`
}

type snapInterest struct {
	CategoryID []string `json:"category_id"`
}

func (s snapAdSquad) AdGroupStatus() string { return s.Status }

func (s snapAdSquad) DailyBudgetMinor() (int64, bool) {
	return minorFromMicros(s.DailyBudgetMicro)
}

func (s snapAdSquad) Window() (time.Time, *time.Time, error) {
	return parseWindow(s.StartTime, s.EndTime, layoutRFC3339)
}

type snapCreative struct {
	AdAccountID       string           `json:"ad_account_id"`
	Name              string           `json:"name"`
	Type              string           `json:"type"`
	Headline          string           `json:"headline"`
	BrandName         string           `json:"brand_name"`
	Shareable         bool             `json:"shareable"`
	CallToAction      string           `json:"call_to_action"`
	TopSnapMediaID    string           `json:"top_snap_media_id,omitempty"`
	TopSnapMediaType  string           `json:"top_snap_media_type,omitempty"`
	WebViewProperties snapWebViewProps `json:"web_view_properties"`
}

type snapWebViewProps struct {
	URL string `json:"url"`
}

func (c snapCreative) Format() domain.CreativeFormat {
	switch {
	case c.TopSnapMediaType == "VIDEO" && c.TopSnapMediaID != "":
		return domain.CreativeVideo
	case c.TopSnapMediaType == "IMAGE" && c.TopSnapMediaID != "":
		return domain.CreativeImage
	case c.TopSnapMediaID == "" && c.WebViewProperties.URL != "":
		return domain.CreativeText
	default:
		return ""
	}
}

func snapchatBackend() *Backend {
	return &Backend{
		Platform: domain.PlatformSnapchat,
		Identity: []Requirement{
			{Field: "ad_account_id", Value: func(c domain.PlatformConfig) string { return c.AccountID }},
		},
		Limits:   TextLimits{Headline: 34, Brand: 25},
		Campaign: snapBuildCampaign,
		AdGroup:  snapBuildAdSquad,
		Creative: snapBuildCreative,
	}
}

func snapBuildCampaign(p *Plan) domain.CampaignSpec {
	return snapCampaign{
		AdAccountID: p.Config.AccountID,
		Name:        p.CampaignName,
		Status:      "PAUSED",
		Objective:   "WEB_VIEW",
		Regulations: snapRegulations{RestrictedDeliverySignals: true},
	}
}

func snapBuildAdSquad(p *Plan) domain.AdGroupSpec {
	geos := make([]snapGeo, 0, len(p.Geo))
	for _, g := range p.Geo {
		geos = append(geos, snapGeo{CountryCode: g.PlatformID})
	}
	squad := snapAdSquad{
		Name:             p.AdGroupName,
		Status:           "PAUSED",
		Type:             "SNAP_ADS",
		PlacementV2:      snapPlacement{Config: "AUTOMATIC"},
		OptimizationGoal: "SWIPES",
		BillingEvent:     "IMPRESSION",
		AutoBid:          true,
		DailyBudgetMicro: microsFromMinor(p.BudgetMinor),
		StartTime:        formatTime(p.Start, layoutRFC3339),
		Targeting:        snapTargeting{Geos: geos},
	}
	if p.End != nil {
		squad.EndTime = formatTime(*p.End, layoutRFC3339)
	}
	if len(p.Interests) > 0 {
		squad.Targeting.Interests = []snapInterest{{CategoryID: platformIDs(p.Interests)}}
	}
	return squad
}

func snapBuildCreative(p *Plan) domain.CreativeSpec {
	c := snapCreative{
		AdAccountID:       p.Config.AccountID,
		Name:              p.AdName,
		Type:              "WEB_VIEW",
		Headline:          p.Headline,
		BrandName:         p.BrandName,
		Shareable:         true,
		CallToAction:      "APPLY_NOW",
		WebViewProperties: snapWebViewProps{URL: p.TargetURL},
	}
	switch p.Creative.Format {
	case domain.CreativeVideo:
		c.TopSnapMediaID = p.Creative.VideoHandle
		c.TopSnapMediaType = "VIDEO"
	case domain.CreativeImage:
		c.TopSnapMediaID = p.Creative.ImageHandle
		c.TopSnapMediaType = "IMAGE"
	}
	return c
}
