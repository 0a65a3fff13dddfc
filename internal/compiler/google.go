package compiler

import (
	"time"

	"jobads/internal/core/domain"
)

// Google Ads API shapes. The campaign budget resource is nested in the ad
// group.

type googleCampaign struct {
	CustomerID             string `json:"customer_id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertising_channel_type"`
}

func (c googleCampaign) CampaignStatus() string { return c.Status }

type googleAdGroup struct {
	Name           string         `json:"name"`
	Status         string         `json:"status"`
	Type           string         `json:"type"`
	CampaignBudget googleBudget   `json:"campaign_budget"`
	StartDateTime  string         `json:"start_date_time"`
	EndDateTime    string         `json:"end_date_time,omitempty"`
	Criteria       googleCriteria `json:"criteria"`
}

type googleBudget struct {
	Name           string `json:"name"`
	AmountMicros   int64  `json:"amount_micros"`
	DeliveryMethod string `json:"delivery_method"`
}

type googleCriteria struct {
	Locations     []googleLocation     `json:"locations"`
	UserInterests []googleUserInterest `json:"user_interests,omitempty"`
}

type googleLocation struct {
	GeoTargetConstant string `json:"geo_target_constant"`
}

type googleUserInterest struct {
	UserInterestCategory string `json:"user_interest_category"`
	Name                 string `json:"name"`
}

func (g googleAdGroup) AdGroupStatus() string { return g.Status }

func (g googleAdGroup) DailyBudgetMinor() (int64, bool) {
	return minorFromMicros(g.CampaignBudget.AmountMicros)
}

func (g googleAdGroup) Window() (time.Time, *time.Time, error) {
	return parseWindow(g.StartDateTime, g.EndDateTime, layoutGoogle)
}

type googleAdGroupAd struct {
	Status string   `json:"status"`
	Ad     googleAd `json:"ad"`
}

type googleAd struct {
	Name                string           `json:"name"`
	FinalURLs           []string         `json:"final_urls"`
	VideoResponsiveAd   *googleVideoAd   `json:"video_responsive_ad,omitempty"`
	ResponsiveDisplayAd *googleDisplayAd `json:"responsive_display_ad,omitempty"`
	ResponsiveSearchAd  *googleSearchAd  `json:"responsive_search_ad,omitempty"`
}

type googleText struct {
	Text string `json:"text"`
}

type googleAsset struct {
	Asset string `json:"asset"`
}

type googleVideoAd struct {
	Headlines     []googleText  `json:"headlines"`
	LongHeadlines []googleText  `json:"long_headlines"`
	Descriptions  []googleText  `json:"descriptions,omitempty"`
	Videos        []googleAsset `json:"videos"`
	CallToActions []googleText  `json:"call_to_actions"`
}

type googleDisplayAd struct {
	Headlines        []googleText  `json:"headlines"`
	LongHeadline     googleText    `json:"long_headline"`
	Descriptions     []googleText  `json:"descriptions,omitempty"`
	BusinessName     string        `json:"business_name"`
	MarketingImages  []googleAsset `json:"marketing_images"`
	CallToActionText string        `json:"call_to_action_text"`
}

type googleSearchAd struct {
	Headlines    []googleText `json:"headlines"`
	Descriptions []googleText `json:"descriptions,omitempty"`
}

func (a googleAdGroupAd) Format() domain.CreativeFormat {
	switch {
	case a.Ad.VideoResponsiveAd != nil:
		return domain.CreativeVideo
	case a.Ad.ResponsiveDisplayAd != nil:
		return domain.CreativeImage
	case a.Ad.ResponsiveSearchAd != nil && len(a.Ad.FinalURLs) > 0:
		return domain.CreativeText
	default:
		return ""
	}
}

const googleLongHeadline = 90

func googleBackend() *Backend {
	return &Backend{
		Platform: domain.PlatformGoogle,
		Identity: []Requirement{
			{Field: "customer_id", Value: func(c domain.PlatformConfig) string { return c.AccountID }},
		},
		Limits:   TextLimits{Headline: 30, Body: 90, Description: 90, Brand: 25},
		Campaign: googleBuildCampaign,
		AdGroup:  googleBuildAdGroup,
		Creative: googleBuildCreative,
	}
}

// googleChannel picks the campaign channel and ad group type that accept
// the ad type built for format.
func googleChannel(format domain.CreativeFormat) (channel, adGroupType string) {
	switch format {
	case domain.CreativeVideo:
		return "VIDEO", "VIDEO_RESPONSIVE"
	case domain.CreativeImage:
		return "DISPLAY", "DISPLAY_STANDARD"
	default:
		return "SEARCH", "SEARCH_STANDARD"
	}
}

func googleBuildCampaign(p *Plan) domain.CampaignSpec {
	channel, _ := googleChannel(p.Creative.Format)
	return googleCampaign{
		CustomerID:             p.Config.AccountID,
		Name:                   p.CampaignName,
		Status:                 "PAUSED",
		AdvertisingChannelType: channel,
	}
}

func googleBuildAdGroup(p *Plan) domain.AdGroupSpec {
	locations := make([]googleLocation, 0, len(p.Geo))
	for _, g := range p.Geo {
		locations = append(locations, googleLocation{GeoTargetConstant: g.PlatformID})
	}
	_, adGroupType := googleChannel(p.Creative.Format)
	group := googleAdGroup{
		Name:   p.AdGroupName,
		Status: "PAUSED",
		Type:   adGroupType,
		CampaignBudget: googleBudget{
			Name:           p.CampaignName + " - Budget",
			AmountMicros:   microsFromMinor(p.BudgetMinor),
			DeliveryMethod: "STANDARD",
		},
		StartDateTime: formatTime(p.Start, layoutGoogle),
		Criteria:      googleCriteria{Locations: locations},
	}
	if p.End != nil {
		group.EndDateTime = formatTime(*p.End, layoutGoogle)
	}
	if len(p.Interests) > 0 {
		interests := make([]googleUserInterest, 0, len(p.Interests))
		for _, e := range p.Interests {
			interests = append(interests, googleUserInterest{UserInterestCategory: e.PlatformID, Name: e.DisplayName})
		}
		group.Criteria.UserInterests = interests
	}
	return group
}

func googleBuildCreative(p *Plan) domain.CreativeSpec {
	ad := googleAd{Name: p.AdName, FinalURLs: []string{p.TargetURL}}
	headlines := googleTexts(p.Headline)
	descriptions := googleTexts(p.Body, p.Description)

	switch p.Creative.Format {
	case domain.CreativeVideo:
		ad.VideoResponsiveAd = &googleVideoAd{
			Headlines:     headlines,
			LongHeadlines: googleTexts(truncate(p.Title, googleLongHeadline)),
			Descriptions:  descriptions,
			Videos:        []googleAsset{{Asset: p.Creative.VideoHandle}},
			CallToActions: googleTexts("Apply now"),
		}
	case domain.CreativeImage:
		ad.ResponsiveDisplayAd = &googleDisplayAd{
			Headlines:        headlines,
			LongHeadline:     googleText{Text: truncate(p.Title, googleLongHeadline)},
			Descriptions:     descriptions,
			BusinessName:     p.BrandName,
			MarketingImages:  []googleAsset{{Asset: p.Creative.ImageHandle}},
			CallToActionText: "Apply now",
		}
	default:
		ad.ResponsiveSearchAd = &googleSearchAd{Headlines: headlines, Descriptions: descriptions}
	}
	return googleAdGroupAd{Status: "PAUSED", Ad: ad}
}

// googleTexts wraps the non-empty values.
func googleTexts(values ...string) []googleText {
	var out []googleText
	for _, v := range values {
		if v != "" {
			out = append(out, googleText{Text: v})
		}
	}
	return out
}
