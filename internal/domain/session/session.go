package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/proposta/internal/domain/proposal"
)

// Session owns the proposal being edited. It is the single source of truth
// for both the form and the preview.
type Session struct {
	ID        string
	StartedAt time.Time

	mu        sync.RWMutex
	current   proposal.Proposal
	revision  int64
	updatedAt time.Time
	// changedAt holds the revision at which each top-level field last changed.
	changedAt map[proposal.Field]int64

	ids    proposal.IDSource
	now    func() time.Time
	logger *slog.Logger
}

// Options configures a new session.
type Options struct {
	// Initial is the starting document. Defaults to proposal.Default.
	Initial *proposal.Proposal
	IDs     proposal.IDSource
	Now     func() time.Time
	Logger  *slog.Logger
}

// New creates a session holding the initial proposal.
func New(opts Options) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	started := now()
	initial := proposal.Default(started)
	if opts.Initial != nil {
		initial = *opts.Initial
	}

	ids := opts.IDs
	if ids == nil {
		ids = proposal.NewClockIDs(now, proposal.MaxServiceID(initial))
	}

	return &Session{
		ID:        uuid.NewString(),
		StartedAt: started,
		current:   initial,
		updatedAt: started,
		changedAt: make(map[proposal.Field]int64, len(proposal.Fields)),
		ids:       ids,
		now:       now,
		logger:    logger,
	}
}

// Snapshot returns the current revision.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Proposal returns the current document.
func (s *Session) Proposal() proposal.Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Apply runs edits against the current document as one step. The revision
// only advances when the document actually changed.
func (s *Session) Apply(edits ...proposal.Edit) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(edits)
}

// ApplyAfter applies the edits returned by build as one step. build runs
// under the session lock; its stale func reports whether a top-level field
// changed after revision base, so callers holding an older copy of the
// document can leave those fields alone.
func (s *Session) ApplyAfter(base int64, build func(stale func(proposal.Field) bool) []proposal.Edit) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	stale := func(f proposal.Field) bool { return s.changedAt[f] > base }
	return s.applyLocked(build(stale))
}

func (s *Session) applyLocked(edits []proposal.Edit) Snapshot {
	next := proposal.Apply(s.current, edits...)
	if !proposal.Unchanged(s.current, next) {
		s.revision++
		for _, f := range proposal.Fields {
			if s.current.Value(f) != next.Value(f) {
				s.changedAt[f] = s.revision
			}
		}
		s.current = next
		s.updatedAt = s.now()
		s.logger.Debug("proposal updated", "session_id", s.ID, "revision", s.revision, "edits", len(edits))
	}
	return s.snapshotLocked()
}

// NextServiceID reserves an id for a line item added within a larger batch.
func (s *Session) NextServiceID() int64 {
	return s.ids.NextID()
}

// AddService appends a new empty line item and returns its id.
func (s *Session) AddService() (Snapshot, int64) {
	id := s.ids.NextID()
	return s.Apply(proposal.AddServiceEdit(id)), id
}

// RemoveService drops the line item with the given id.
func (s *Session) RemoveService(id int64) Snapshot {
	return s.Apply(proposal.RemoveServiceEdit(id))
}

// Reset replaces the document with the default example.
func (s *Session) Reset() Snapshot {
	fresh := proposal.Default(s.now())
	return s.Apply(func(proposal.Proposal) proposal.Proposal { return fresh })
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		SessionID: s.ID,
		Revision:  s.revision,
		UpdatedAt: s.updatedAt,
		Proposal:  s.current,
	}
}
