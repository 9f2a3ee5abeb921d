package domain

import "time"

// Session is the durable per-browser record: an opaque cookie token mapped
// to the invitation code last resolved by that browser. Only the code
// persists; guest identity and stats are re-resolved on demand.
type Session struct {
	Token      string
	Codigo     string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// SessionState is what pages see: the resolved guest, if any, plus the
// derived stats snapshot. A zero value is a valid anonymous state.
type SessionState struct {
	Convidado *Convidado      `json:"convidado,omitempty"`
	Stats     *ConvidadoStats `json:"stats,omitempty"`
}

// Resolved reports whether a guest is attached to this state.
func (s *SessionState) Resolved() bool {
	return s != nil && s.Convidado != nil
}
