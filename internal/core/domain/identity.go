package domain

// Identity is the decoded token payload attached to a request after
// authentication.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// Allows reports whether the identity passes an owner-gate for the given
// resource owner: admins always pass, everyone else only for their own id.
func (i Identity) Allows(ownerID string) bool {
	return i.IsAdmin || i.UserID == ownerID
}
