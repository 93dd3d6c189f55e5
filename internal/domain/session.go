package domain

import "time"

// Session is a server-side login session. The client only ever holds a
// signed token referencing the session id; everything else lives here.
type Session struct {
	ID        string    `json:"id"`
	AdminID   int32     `json:"admin_id"`
	CreatedOn time.Time `json:"created_on"`
	ExpiresOn time.Time `json:"expires_on"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresOn)
}
