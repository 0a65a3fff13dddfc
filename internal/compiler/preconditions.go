package compiler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobads/internal/core/domain"
)

// records validates the struct tags on domain.AdRecord. A single instance
// is safe for concurrent use and caches struct metadata.
var records = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var reasons = map[string]string{
	"required": "is required",
	"http_url": "must be an absolute http(s) URL",
}

// checkPreconditions lists every missing or invalid record field needed
// before any bundle can be built. A budget is never guessed.
func checkPreconditions(rec domain.AdRecord) []domain.FieldIssue {
	var issues []domain.FieldIssue

	if err := records.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []domain.FieldIssue{{Field: "record", Reason: err.Error()}}
		}
		for _, fe := range verrs {
			reason, ok := reasons[fe.Tag()]
			if !ok {
				reason = "failed " + fe.Tag()
			}
			issues = append(issues, domain.FieldIssue{Field: fe.Field(), Reason: reason})
		}
	}

	switch {
	case !rec.DailyBudget.Valid:
		issues = append(issues, domain.FieldIssue{Field: "daily_budget", Reason: "is required"})
	case !rec.DailyBudget.Decimal.IsPositive():
		issues = append(issues, domain.FieldIssue{Field: "daily_budget", Reason: "must be greater than zero"})
	case exceedsMaxMinor(rec.DailyBudget.Decimal):
		issues = append(issues, domain.FieldIssue{Field: "daily_budget", Reason: "exceeds the maximum supported amount"})
	}

	if rec.ScheduleStart.IsZero() {
		issues = append(issues, domain.FieldIssue{Field: "schedule_start", Reason: "is required"})
	}
	return issues
}
