package configs

import "jobads/internal/core/domain"

// Platform holds the account identity of one ad network. Which fields are
// required depends on the network; the compiler reports the missing ones.
type Platform struct {
	AccountID           string `env:"ACCOUNT_ID"`
	PageID              string `env:"PAGE_ID"`
	FundingInstrumentID string `env:"FUNDING_INSTRUMENT_ID"`
	BrandName           string `env:"BRAND_NAME"`
	// DefaultCountry anchors remote or location-less ads. Empty means US.
	DefaultCountry string `env:"DEFAULT_COUNTRY"`
}

// Domain converts the section into the compiler's configuration type.
func (p Platform) Domain() domain.PlatformConfig {
	return domain.PlatformConfig{
		AccountID:           p.AccountID,
		PageID:              p.PageID,
		FundingInstrumentID: p.FundingInstrumentID,
		BrandName:           p.BrandName,
		DefaultCountry:      p.DefaultCountry,
	}
}
