package session

import (
	"time"

	"github.com/rpggio/proposta/internal/domain/proposal"
)

// Snapshot is an immutable view of the session at one revision.
type Snapshot struct {
	SessionID string            `json:"session_id"`
	Revision  int64             `json:"revision"`
	UpdatedAt time.Time         `json:"updated_at"`
	Proposal  proposal.Proposal `json:"proposal"`
}
