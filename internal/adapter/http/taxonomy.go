package httpadapter

import (
	"log/slog"
	"net/http"

	"jobads/internal/core/domain"
	"jobads/internal/core/port"
)

type taxonomyResponse struct {
	Version  string                    `json:"version"`
	Coverage []domain.TaxonomyCoverage `json:"coverage"`
}

func toTaxonomyResponse(info port.TaxonomyInfo) taxonomyResponse {
	return taxonomyResponse{Version: info.Version, Coverage: info.Coverage}
}

func (h *Handler) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, toTaxonomyResponse(h.svc.Taxonomy(r.Context())))
}

// handleTaxonomyReload rebuilds the taxonomy tables. A failed reload keeps
// the previous tables and answers 500 with the version still in use.
func (h *Handler) handleTaxonomyReload(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.ReloadTaxonomy(r.Context())
	if err != nil {
		h.logger.Error("taxonomy reload error", slog.Any("error", err))
		writeProblem(w, Problem{
			Status: http.StatusInternalServerError,
			Title:  "taxonomy reload failed",
			Detail: err.Error(),
			Meta:   map[string]any{"version": info.Version},
		})
		return
	}
	h.writeJSON(w, http.StatusOK, toTaxonomyResponse(info))
}
