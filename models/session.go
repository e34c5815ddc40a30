package models

// Session is the per-request identity. It is rebuilt from the incoming
// request on every operation, so a login or logout between two calls is
// observed immediately by the next one.
type Session struct {
	GuestID string
	Token   string
	UserID  string
}

// Authenticated reports whether a credential is present on this request.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
