package compiler

import (
	"time"

	"jobads/internal/core/domain"
)

// Meta Marketing API shapes: campaign, ad set and ad creative.

type metaCampaign struct {
	Name                     string   `json:"name"`
	Objective                string   `json:"objective"`
	Status                   string   `json:"status"`
	BuyingType               string   `json:"buying_type"`
	SpecialAdCategories      []string `json:"special_ad_categories"`
	SpecialAdCategoryCountry []string `json:"special_ad_category_country"`
}

func (c metaCampaign) CampaignStatus() string { return c.Status }

type metaAdSet struct {
	Name             string        `json:"name"`
	Status           string        `json:"status"`
	DailyBudget      int64         `json:"daily_budget"`
	BillingEvent     string        `json:"billing_event"`
	OptimizationGoal string        `json:"optimization_goal"`
	DestinationType  string        `json:"destination_type"`
	StartTime        int64         `json:"start_time"`
	EndTime          *int64        `json:"end_time,omitempty"`
	Targeting        metaTargeting `json:"targeting"`
}

type metaTargeting struct {
	GeoLocations metaGeoLocations   `json:"geo_locations"`
	FlexibleSpec []metaFlexibleSpec `json:"flexible_spec,omitempty"`
}

type metaGeoLocations struct {
	Countries []string `json:"countries"`
}

type metaFlexibleSpec struct {
	Interests []metaInterest `json:"interests"`
}

type metaInterest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (a metaAdSet) AdGroupStatus() string { return a.Status }

func (a metaAdSet) DailyBudgetMinor() (int64, bool) { return a.DailyBudget, true }

func (a metaAdSet) Window() (time.Time, *time.Time, error) {
	start := time.Unix(a.StartTime, 0).UTC()
	if a.EndTime == nil {
		return start, nil, nil
	}
	end := time.Unix(*a.EndTime, 0).UTC()
	return start, &end, nil
}

type metaCreative struct {
	Name            string        `json:"name"`
	ObjectStorySpec metaStorySpec `json:"object_story_spec"`
}

type metaStorySpec struct {
	PageID    string         `json:"page_id"`
	LinkData  *metaLinkData  `json:"link_data,omitempty"`
	VideoData *metaVideoData `json:"video_data,omitempty"`
}

type metaLinkData struct {
	Link         string           `json:"link"`
	Name         string           `json:"name,omitempty"`
	Message      string           `json:"message,omitempty"`
	Description  string           `json:"description,omitempty"`
	ImageHash    string           `json:"image_hash,omitempty"`
	CallToAction metaCallToAction `json:"call_to_action"`
}

type metaVideoData struct {
	VideoID      string           `json:"video_id"`
	ImageURL     string           `json:"image_url"`
	Title        string           `json:"title"`
	Message      string           `json:"message,omitempty"`
	CallToAction metaCallToAction `json:"call_to_action"`
}

type metaCallToAction struct {
	Type  string       `json:"type"`
	Value metaCTAValue `json:"value"`
}

type metaCTAValue struct {
	Link string `json:"link"`
}

func (c metaCreative) Format() domain.CreativeFormat {
	s := c.ObjectStorySpec
	switch {
	case s.VideoData != nil && s.VideoData.VideoID != "":
		return domain.CreativeVideo
	case s.LinkData != nil && s.LinkData.ImageHash != "":
		return domain.CreativeImage
	case s.LinkData != nil && s.LinkData.Link != "":
		return domain.CreativeText
	default:
		return ""
	}
}

func metaBackend() *Backend {
	return &Backend{
		Platform: domain.PlatformMeta,
		Identity: []Requirement{
			{Field: "page_id", Value: func(c domain.PlatformConfig) string { return c.PageID }},
		},
		Limits:   TextLimits{Headline: 40, Body: 125, Description: 30},
		Campaign: metaBuildCampaign,
		AdGroup:  metaBuildAdSet,
		Creative: metaBuildCreative,
	}
}

func metaBuildCampaign(p *Plan) domain.CampaignSpec {
	countries := make([]string, 0, len(p.Geo))
	for _, g := range p.Geo {
		countries = append(countries, g.AbstractCode)
	}
	return metaCampaign{
		Name:                     p.CampaignName,
		Objective:                "OUTCOME_TRAFFIC",
		Status:                   "PAUSED",
		BuyingType:               "AUCTION",
		SpecialAdCategories:      []string{"EMPLOYMENT"},
		SpecialAdCategoryCountry: countries,
	}
}

func metaBuildAdSet(p *Plan) domain.AdGroupSpec {
	set := metaAdSet{
		Name:             p.AdGroupName,
		Status:           "PAUSED",
		DailyBudget:      p.BudgetMinor,
		BillingEvent:     "IMPRESSIONS",
		OptimizationGoal: "LINK_CLICKS",
		DestinationType:  "WEBSITE",
		StartTime:        p.Start.Unix(),
		Targeting: metaTargeting{
			GeoLocations: metaGeoLocations{Countries: platformIDs(p.Geo)},
		},
	}
	if p.End != nil {
		end := p.End.Unix()
		set.EndTime = &end
	}
	if len(p.Interests) > 0 {
		interests := make([]metaInterest, 0, len(p.Interests))
		for _, e := range p.Interests {
			interests = append(interests, metaInterest{ID: e.PlatformID, Name: e.DisplayName})
		}
		set.Targeting.FlexibleSpec = []metaFlexibleSpec{{Interests: interests}}
	}
	return set
}

func metaBuildCreative(p *Plan) domain.CreativeSpec {
	cta := metaCallToAction{Type: "APPLY_NOW", Value: metaCTAValue{Link: p.TargetURL}}
	spec := metaStorySpec{PageID: p.Config.PageID}

	switch p.Creative.Format {
	case domain.CreativeVideo:
		spec.VideoData = &metaVideoData{
			VideoID:      p.Creative.VideoHandle,
			ImageURL:     p.Creative.ThumbnailURL,
			Title:        p.Headline,
			Message:      p.Body,
			CallToAction: cta,
		}
	case domain.CreativeImage:
		spec.LinkData = &metaLinkData{
			Link:         p.TargetURL,
			Name:         p.Headline,
			Message:      p.Body,
			Description:  p.Description,
			ImageHash:    p.Creative.ImageHandle,
			CallToAction: cta,
		}
	default:
		spec.LinkData = &metaLinkData{
			Link:         p.TargetURL,
			Name:         p.Headline,
			Message:      p.Body,
			Description:  p.Description,
			CallToAction: cta,
		}
	}
	return metaCreative{Name: p.AdName, ObjectStorySpec: spec}
}
