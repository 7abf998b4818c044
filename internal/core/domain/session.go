package domain

// Session is a snapshot of the client-held authentication state. Loading is
// true only while the initial restore from durable storage is in flight.
type Session struct {
	Token       string
	User        *User
	Permissions PermissionSet
	Loading     bool
}

// IsAuthenticated is defined by token presence alone; a session may carry a
// token without a cached user record.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
