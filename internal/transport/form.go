package transport

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/rpggio/proposta/internal/domain/proposal"
)

// decodeEdits maps submitted form values onto mutation operations. Keys are
// "proposalNumber", "client.name", "services.<id>.quantity" and so on;
// anything else is ignored. Top-level fields for which stale reports true
// are skipped; stale may be nil. Contact and service fields carry no
// revision check, so an older page can still overwrite them.
func decodeEdits(form url.Values, stale func(proposal.Field) bool) []proposal.Edit {
	keys := make([]string, 0, len(form))
	for key := range form {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	edits := make([]proposal.Edit, 0, len(keys))
	for _, key := range keys {
		value := normalizeNewlines(form.Get(key))

		if f, ok := proposal.ParseField(key); ok {
			if stale != nil && stale(f) {
				continue
			}
			edits = append(edits, proposal.FieldEdit(f, value))
			continue
		}

		parts := strings.Split(key, ".")
		switch len(parts) {
		case 2:
			party, ok := proposal.ParseParty(parts[0])
			if !ok {
				continue
			}
			f, ok := proposal.ParseContactField(parts[1])
			if !ok {
				continue
			}
			edits = append(edits, proposal.ContactEdit(party, f, value))
		case 3:
			if parts[0] != "services" {
				continue
			}
			id, err := strconv.ParseInt(parts[1], 10, 64)
			if err != nil {
				continue
			}
			f, ok := proposal.ParseServiceField(parts[2])
			if !ok {
				continue
			}
			edits = append(edits, proposal.ServiceEdit(id, f, value))
		}
	}
	return edits
}

// formRevision reads the revision the form was rendered from. A missing or
// malformed value means nothing is treated as stale.
func formRevision(form url.Values) int64 {
	rev, err := strconv.ParseInt(form.Get("revision"), 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return rev
}

// Browsers submit textarea line breaks as CRLF.
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
