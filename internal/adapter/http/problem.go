package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobads/internal/core/domain"
	"jobads/internal/core/port"
)

// Problem is an RFC 7807 problem details body.
type Problem struct {
	Type     string              `json:"type,omitempty"`
	Title    string              `json:"title,omitempty"`
	Status   int                 `json:"status,omitempty"`
	Detail   string              `json:"detail,omitempty"`
	Instance string              `json:"instance,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
	Meta     map[string]any      `json:"meta,omitempty"`
}

func writeProblem(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// problemFor maps an error returned by the use case to a problem. Typed
// compilation failures list their offending fields under Errors.
func problemFor(err error) Problem {
	p := Problem{Status: http.StatusInternalServerError, Title: "internal error"}

	var (
		cfgErr *domain.ConfigurationError
		preErr *domain.PreconditionError
		valErr *domain.ValidationError
	)
	switch {
	case errors.As(err, &cfgErr):
		p.Title = "platform not configured"
		p.Detail = cfgErr.Error()
		p.Errors = map[string][]string{cfgErr.Field: {cfgErr.Reason}}
	case errors.As(err, &preErr):
		p.Status = http.StatusUnprocessableEntity
		p.Title = "ad record incomplete"
		p.Detail = preErr.Error()
		p.Errors = make(map[string][]string, len(preErr.Fields))
		for _, f := range preErr.Fields {
			p.Errors[f.Field] = append(p.Errors[f.Field], f.Reason)
		}
	case errors.As(err, &valErr):
		p.Status = http.StatusUnprocessableEntity
		p.Title = "compiled bundle failed validation"
		p.Detail = valErr.Error()
		p.Errors = make(map[string][]string, len(valErr.Failures))
		for _, f := range valErr.Failures {
			p.Errors[f.Field] = append(p.Errors[f.Field], f.Message)
		}
	case errors.Is(err, domain.ErrNoPlatforms):
		p.Status = http.StatusUnprocessableEntity
		p.Title = "no platforms"
		p.Detail = err.Error()
	case errors.Is(err, port.ErrCompilationNotFound):
		p.Status = http.StatusNotFound
		p.Title = "compilation not found"
	case errors.Is(err, port.ErrAuditDisabled):
		p.Status = http.StatusNotImplemented
		p.Title = "audit trail disabled"
	}
	return p
}
