package domain

import (
	"fmt"
	"strings"
)

// Platform identifies an advertising network the engine can compile for.
type Platform string

const (
	PlatformMeta     Platform = "meta"
	PlatformGoogle   Platform = "google"
	PlatformTwitter  Platform = "twitter"
	PlatformTikTok   Platform = "tiktok"
	PlatformSnapchat Platform = "snapchat"
)

// Platforms lists every supported network in a stable order.
func Platforms() []Platform {
	return []Platform{PlatformMeta, PlatformGoogle, PlatformTwitter, PlatformTikTok, PlatformSnapchat}
}

// ParsePlatform normalises a platform name. "x" is accepted as an alias for
// twitter.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if p == "x" {
		return PlatformTwitter, nil
	}
	for _, known := range Platforms() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// UnmarshalText rejects unknown platform names at decode time.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// DefaultCountry is used as the geographic anchor when a platform config
// does not name one.
const DefaultCountry = "US"

// PlatformConfig carries the per-network identity and defaults needed to
// publish. It is always passed explicitly into a compilation; the engine
// never reads it from the environment.
type PlatformConfig struct {
	// AccountID is the ad account on the network: Google customer id,
	// TikTok advertiser id, Snapchat ad account id, X ads account id or
	// Meta ad account id.
	AccountID           string `json:"account_id,omitempty"`
	PageID              string `json:"page_id,omitempty"`
	FundingInstrumentID string `json:"funding_instrument_id,omitempty"`
	BrandName           string `json:"brand_name,omitempty"`
	DefaultCountry      string `json:"default_country,omitempty"`
}

// Anchor returns the configured default country, upper-cased, or
// DefaultCountry when none is set.
func (c PlatformConfig) Anchor() string {
	if v := strings.ToUpper(strings.TrimSpace(c.DefaultCountry)); v != "" {
		return v
	}
	return DefaultCountry
}
