package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobads/internal/core/domain"
)

// handleResolve previews how a targeting descriptor maps onto the
// {platform} path parameter. Unknown platforms result in HTTP 404.
func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	platform, err := domain.ParsePlatform(chi.URLParam(r, "platform"))
	if err != nil {
		writeProblem(w, Problem{Status: http.StatusNotFound, Title: "unknown platform", Detail: err.Error()})
		return
	}

	var desc domain.TargetingDescriptor
	if err = json.NewDecoder(r.Body).Decode(&desc); err != nil {
		writeProblem(w, Problem{Status: http.StatusBadRequest, Title: "invalid JSON", Detail: err.Error()})
		return
	}

	rt, err := h.svc.Resolve(r.Context(), platform, desc)
	if err != nil {
		h.logger.Error("resolve error", slog.Any("error", err))
		writeProblem(w, problemFor(err))
		return
	}
	h.writeJSON(w, http.StatusOK, rt)
}
