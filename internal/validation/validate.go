// Package validation checks compiled bundles for structural problems before
// they leave the engine.
package validation

import (
	"fmt"
	"strings"

	"jobads/internal/core/domain"
)

// Failure codes.
const (
	CodeCampaignMissing   = "campaign_missing"
	CodeAdGroupMissing    = "ad_group_missing"
	CodeCreativeMissing   = "creative_missing"
	CodeBudgetNotInteger  = "budget_not_integer"
	CodeBudgetNotPositive = "budget_not_positive"
	CodeScheduleInvalid   = "schedule_invalid"
	CodeScheduleEnd       = "schedule_end_before_start"
	CodeStatusActive      = "status_not_inactive"
)

// inactive lists statuses a freshly compiled object may carry. Nothing the
// engine emits may start spending on its own.
var inactive = map[string]struct{}{
	"PAUSED":  {},
	"DISABLE": {},
	"DRAFT":   {},
}

// Validate returns every failure found in b. An empty result means the
// bundle is valid.
func Validate(b *domain.Bundle) []domain.ValidationFailure {
	if b == nil {
		return []domain.ValidationFailure{
			{Code: CodeCampaignMissing, Field: "campaign", Message: "bundle is empty"},
		}
	}

	var out []domain.ValidationFailure
	add := func(code, field, format string, args ...any) {
		out = append(out, domain.ValidationFailure{Code: code, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if b.Campaign == nil {
		add(CodeCampaignMissing, "campaign", "campaign spec is missing")
	} else if !isInactive(b.Campaign.CampaignStatus()) {
		add(CodeStatusActive, "campaign.status", "status %q is not an inactive status", b.Campaign.CampaignStatus())
	}

	if b.Creative == nil || b.Creative.Format() == "" {
		add(CodeCreativeMissing, "creative", "creative carries no video, image or text")
	}

	if b.AdGroup == nil {
		add(CodeAdGroupMissing, "ad_group", "ad group spec is missing")
		return out
	}

	if !isInactive(b.AdGroup.AdGroupStatus()) {
		add(CodeStatusActive, "ad_group.status", "status %q is not an inactive status", b.AdGroup.AdGroupStatus())
	}

	units, exact := b.AdGroup.DailyBudgetMinor()
	switch {
	case !exact:
		add(CodeBudgetNotInteger, "ad_group.budget", "budget is not a whole number of minor units")
	case units <= 0:
		add(CodeBudgetNotPositive, "ad_group.budget", "budget must be positive, got %d", units)
	}

	start, end, err := b.AdGroup.Window()
	switch {
	case err != nil:
		add(CodeScheduleInvalid, "ad_group.schedule", "schedule cannot be parsed: %v", err)
	case end != nil && end.Before(start):
		add(CodeScheduleEnd, "ad_group.schedule", "end %s is before start %s",
			end.UTC().Format("2006-01-02T15:04:05Z"), start.UTC().Format("2006-01-02T15:04:05Z"))
	}
	return out
}

func isInactive(status string) bool {
	_, ok := inactive[strings.ToUpper(strings.TrimSpace(status))]
	return ok
}
