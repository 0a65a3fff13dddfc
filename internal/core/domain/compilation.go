package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CompilationEntry is one row of the compiled-bundle audit trail: the result
// of one platform within one compilation request.
type CompilationEntry struct {
	ID            uuid.UUID       `json:"id"`
	CompilationID uuid.UUID       `json:"compilation_id"`
	AdID          string          `json:"ad_id"`
	Platform      Platform        `json:"platform"`
	Stage         Stage           `json:"stage"`
	Outcome       string          `json:"outcome"`
	Bundle        json.RawMessage `json:"bundle,omitempty"`
	Failure       json.RawMessage `json:"failure,omitempty"`
	UnmappedCodes []string        `json:"unmapped_codes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
