package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"jobads/internal/core/domain"
	"jobads/internal/core/port"
)

type compileRequest struct {
	Record    domain.AdRecord            `json:"record"`
	Targeting domain.TargetingDescriptor `json:"targeting"`
	Platforms []domain.Platform          `json:"platforms,omitempty"`
}

type resultResponse struct {
	Platform domain.Platform                  `json:"platform"`
	Stage    domain.Stage                     `json:"stage"`
	Bundle   *domain.Bundle                   `json:"bundle,omitempty"`
	Error    *domain.Failure                  `json:"error,omitempty"`
	Warnings []domain.UnmappedTaxonomyWarning `json:"warnings,omitempty"`
}

type compileResponse struct {
	CompilationID uuid.UUID        `json:"compilation_id"`
	Results       []resultResponse `json:"results"`
}

func toResultResponse(r domain.Result) resultResponse {
	return resultResponse{
		Platform: r.Platform,
		Stage:    r.Stage,
		Bundle:   r.Bundle,
		Error:    domain.FailureOf(r.Err),
		Warnings: r.Warnings,
	}
}

// handleCompile compiles an ad record for several platforms. Per-platform
// failures are reported inside the 200 response; only a request that
// compiles nothing at all produces a problem response.
func (h *Handler) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, Problem{Status: http.StatusBadRequest, Title: "invalid JSON", Detail: err.Error()})
		return
	}

	resp, err := h.svc.Compile(r.Context(), port.CompileReq{
		Record:    req.Record,
		Targeting: req.Targeting,
		Platforms: req.Platforms,
	})
	if err != nil {
		h.logger.Error("compile error", slog.Any("error", err))
		writeProblem(w, problemFor(err))
		return
	}

	out := compileResponse{CompilationID: resp.CompilationID, Results: make([]resultResponse, 0, len(resp.Results))}
	for _, res := range resp.Results {
		out.Results = append(out.Results, toResultResponse(res))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleCompilePlatform compiles an ad record for the {platform} path
// parameter only. A compilation failure is answered with a problem whose
// status reflects who has to act: 500 for operator configuration, 422 for
// the record's author.
func (h *Handler) handleCompilePlatform(w http.ResponseWriter, r *http.Request) {
	platform, err := domain.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		writeProblem(w, Problem{Status: http.StatusNotFound, Title: "unknown platform", Detail: err.Error()})
		return
	}

	var req compileRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, Problem{Status: http.StatusBadRequest, Title: "invalid JSON", Detail: err.Error()})
		return
	}

	resp, err := h.svc.Compile(r.Context(), port.CompileReq{
		Record:    req.Record,
		Targeting: req.Targeting,
		Platforms: []domain.Platform{platform},
	})
	if err != nil {
		h.logger.Error("compile error", slog.Any("error", err))
		writeProblem(w, problemFor(err))
		return
	}
	if len(resp.Results) != 1 {
		h.logger.Error("unexpected result count", slog.Int("results", len(resp.Results)))
		writeProblem(w, Problem{Status: http.StatusInternalServerError, Title: "internal error"})
		return
	}

	res := resp.Results[0]
	if res.Err != nil {
		p := problemFor(res.Err)
		p.Instance = "/api/v1/compilations/" + resp.CompilationID.String()
		p.Meta = map[string]any{
			"compilation_id": resp.CompilationID,
			"platform":       res.Platform,
			"stage":          res.Stage,
			"kind":           domain.OutcomeOf(res.Err),
		}
		writeProblem(w, p)
		return
	}

	h.writeJSON(w, http.StatusOK, struct {
		CompilationID uuid.UUID `json:"compilation_id"`
		resultResponse
	}{resp.CompilationID, toResultResponse(res)})
}
