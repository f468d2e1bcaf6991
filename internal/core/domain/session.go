package domain

import "time"

// Session is the server-side record behind a session cookie. A zero UserID
// means the visitor is anonymous; anonymous sessions exist only to carry
// flash notices across a redirect.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	Flashes   []string  `json:"flashes,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	dirty bool
}

// NewSession returns an unsaved anonymous session.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now}
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// CurrentUserID returns the bound user id, if any.
func (s *Session) CurrentUserID() (int64, bool) {
	if !s.Authenticated() {
		return 0, false
	}
	return s.UserID, true
}

// Bind attaches an authenticated identity.
func (s *Session) Bind(u *User) {
	s.UserID = u.ID
	s.Username = u.Username
	s.dirty = true
}

func (s *Session) AddFlash(msg string) {
	s.Flashes = append(s.Flashes, msg)
	s.dirty = true
}

// PopFlashes returns pending notices and clears them.
func (s *Session) PopFlashes() []string {
	if len(s.Flashes) == 0 {
		return nil
	}
	out := s.Flashes
	s.Flashes = nil
	s.dirty = true
	return out
}

// Dirty reports whether the record changed since it was loaded.
func (s *Session) Dirty() bool { return s.dirty }

// MarkDirty forces the record to be persisted at the end of the request.
func (s *Session) MarkDirty() { s.dirty = true }

// MarkClean is called by stores after loading or saving.
func (s *Session) MarkClean() { s.dirty = false }
