package compiler

import (
	"strings"
	"time"

	"jobads/internal/core/domain"
)

// X Ads API shapes: campaign, line item and promoted tweet.

type twitterCampaign struct {
	AccountID           string `json:"account_id"`
	Name                string `json:"name"`
	FundingInstrumentID string `json:"funding_instrument_id"`
	Objective           string `json:"objective"`
	EntityStatus        string `json:"entity_status"`
	StandardDelivery    bool   `json:"standard_delivery"`
}

func (c twitterCampaign) CampaignStatus() string { return c.EntityStatus }

type twitterLineItem struct {
	Name                        string           `json:"name"`
	ProductType                 string           `json:"product_type"`
	Placements                  []string         `json:"placements"`
	BidStrategy                 string           `json:"bid_strategy"`
	EntityStatus                string           `json:"entity_status"`
	StartTime                   string           `json:"start_time"`
	EndTime                     string           `json:"end_time,omitempty"`
	DailyBudgetAmountLocalMicro int64            `json:"daily_budget_amount_local_micro"`
	TargetingCriteria           twitterTargeting `json:"targeting_criteria"`
}

type twitterTargeting struct {
	Locations []twitterCriterion `json:"locations"`
	Interests []twitterCriterion `json:"interests,omitempty"`
}

type twitterCriterion struct {
	TargetingType  string `json:"targeting_type"`
	TargetingValue string `json:"targeting_value"`
	Name           string `json:"name,omitempty"`
}

func (l twitterLineItem) AdGroupStatus() string { return l.EntityStatus }

func (l twitterLineItem) DailyBudgetMinor() (int64, bool) {
	return minorFromMicros(l.DailyBudgetAmountLocalMicro)
}

func (l twitterLineItem) Window() (time.Time, *time.Time, error) {
	return parseWindow(l.StartTime, l.EndTime, layoutRFC3339)
}

type twitterTweet struct {
	Text     string       `json:"text"`
	Nullcast bool         `json:"nullcast"`
	Card     *twitterCard `json:"card,omitempty"`
}

type twitterCard struct {
	CardType     string `json:"card_type"`
	Name         string `json:"name"`
	WebsiteTitle string `json:"website_title"`
	WebsiteURL   string `json:"website_url"`
	MediaKey     string `json:"media_key"`
	PosterURL    string `json:"poster_url,omitempty"`
}

func (t twitterTweet) Format() domain.CreativeFormat {
	switch {
	case t.Card != nil && t.Card.CardType == "VIDEO_WEBSITE":
		return domain.CreativeVideo
	case t.Card != nil && t.Card.CardType == "WEBSITE":
		return domain.CreativeImage
	case t.Card == nil && t.Text != "":
		return domain.CreativeText
	default:
		return ""
	}
}

func twitterBackend() *Backend {
	return &Backend{
		Platform: domain.PlatformTwitter,
		Identity: []Requirement{
			{Field: "account_id", Value: func(c domain.PlatformConfig) string { return c.AccountID }},
			{Field: "funding_instrument_id", Value: func(c domain.PlatformConfig) string { return c.FundingInstrumentID }},
		},
		Limits:   TextLimits{Headline: 70, Body: 280},
		Campaign: twitterBuildCampaign,
		AdGroup:  twitterBuildLineItem,
		Creative: twitterBuildTweet,
	}
}

func twitterBuildCampaign(p *Plan) domain.CampaignSpec {
	return twitterCampaign{
		AccountID:           p.Config.AccountID,
		Name:                p.CampaignName,
		FundingInstrumentID: p.Config.FundingInstrumentID,
		Objective:           "WEBSITE_CLICKS",
		EntityStatus:        "PAUSED",
		StandardDelivery:    true,
	}
}

func twitterBuildLineItem(p *Plan) domain.AdGroupSpec {
	locations := make([]twitterCriterion, 0, len(p.Geo))
	for _, g := range p.Geo {
		locations = append(locations, twitterCriterion{TargetingType: "LOCATION", TargetingValue: g.PlatformID})
	}
	item := twitterLineItem{
		Name:                        p.AdGroupName,
		ProductType:                 "PROMOTED_TWEETS",
		Placements:                  []string{"ALL_ON_TWITTER"},
		BidStrategy:                 "AUTO",
		EntityStatus:                "PAUSED",
		StartTime:                   formatTime(p.Start, layoutRFC3339),
		DailyBudgetAmountLocalMicro: microsFromMinor(p.BudgetMinor),
		TargetingCriteria:           twitterTargeting{Locations: locations},
	}
	if p.End != nil {
		item.EndTime = formatTime(*p.End, layoutRFC3339)
	}
	if len(p.Interests) > 0 {
		interests := make([]twitterCriterion, 0, len(p.Interests))
		for _, e := range p.Interests {
			interests = append(interests, twitterCriterion{TargetingType: "INTEREST", TargetingValue: e.PlatformID, Name: e.DisplayName})
		}
		item.TargetingCriteria.Interests = interests
	}
	return item
}

func twitterBuildTweet(p *Plan) domain.CreativeSpec {
	text := p.Body
	if text == "" {
		text = p.Headline
	}

	card := &twitterCard{
		Name:         p.AdName,
		WebsiteTitle: p.Headline,
		WebsiteURL:   p.TargetURL,
	}
	switch p.Creative.Format {
	case domain.CreativeVideo:
		card.CardType = "VIDEO_WEBSITE"
		card.MediaKey = p.Creative.VideoHandle
		card.PosterURL = p.Creative.ThumbnailURL
	case domain.CreativeImage:
		card.CardType = "WEBSITE"
		card.MediaKey = p.Creative.ImageHandle
	default:
		// Without media the link rides in the tweet text.
		return twitterTweet{Text: tweetWithLink(text, p.TargetURL), Nullcast: true}
	}
	return twitterTweet{Text: text, Nullcast: true, Card: card}
}

// tweetLinkWeight is what X counts for any link, whatever its length, since
// links are wrapped by t.co.
const tweetLinkWeight = 23

// tweetWithLink appends url to text, shortening text so the weighted result
// stays within the tweet limit.
func tweetWithLink(text, url string) string {
	const limit = 280
	room := limit - tweetLinkWeight - 1
	text = strings.TrimSpace(truncate(text, room))
	if text == "" {
		return url
	}
	return text + " " + url
}
