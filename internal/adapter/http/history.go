package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleHistory returns the audit trail of one compilation. It expects an
// {id} path parameter holding the compilation UUID. Malformed ids result in
// HTTP 400 and unknown ones in HTTP 404.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeProblem(w, Problem{Status: http.StatusBadRequest, Title: "invalid compilation id", Detail: err.Error()})
		return
	}

	entries, err := h.svc.History(r.Context(), id)
	if err != nil {
		h.logger.Error("history error", slog.String("compilation_id", id.String()), slog.Any("error", err))
		writeProblem(w, problemFor(err))
		return
	}
	h.writeJSON(w, http.StatusOK, entries)
}
