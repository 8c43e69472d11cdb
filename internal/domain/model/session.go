package model

// Session is the authenticated admin as seen by the dashboard.
type Session struct {
	AccessToken *string
	Email       string
}

// Token returns the order service credential, reporting false when none is held.
func (s Session) Token() (string, bool) {
	if s.AccessToken == nil || *s.AccessToken == "" {
		return "", false
	}
	return *s.AccessToken, true
}
