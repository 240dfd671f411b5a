package oob

import "github.com/akacastor/oobin/internal/rs"

// Session owns one RS codec instance and one set of FEC statistics. It
// replaces the reference decoder's process-wide RS init flag and global
// counters (see Design Notes in SPEC_FULL.md §9): every Session builds its
// own codec tables and accumulates its own Stats, so two sessions never
// share mutable state.
//
// A Session is not safe for concurrent ProcessChunk calls; its *rs.Codec
// is stateless between calls but not designed for concurrent use by more
// than one caller at a time, matching the reference codec's single-thread
// assumption.
type Session struct {
	codec *rs.Codec
	stats Stats
}

// NewSession builds a Session's RS codec tables once and returns it with
// zeroed statistics.
func NewSession() *Session {
	return &Session{codec: rs.New()}
}

// Stats returns a copy of the session's current FEC counters.
func (s *Session) Stats() Stats {
	return s.stats
}
