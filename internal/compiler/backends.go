package compiler

import "jobads/internal/core/domain"

// Backends returns the schema mapping of every supported network.
func Backends() map[domain.Platform]*Backend {
	return map[domain.Platform]*Backend{
		domain.PlatformMeta:     metaBackend(),
		domain.PlatformGoogle:   googleBackend(),
		domain.PlatformTwitter:  twitterBackend(),
		domain.PlatformTikTok:   tiktokBackend(),
		domain.PlatformSnapchat: snapchatBackend(),
	}
}
