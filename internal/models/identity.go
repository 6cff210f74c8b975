package models

// Identity is the authenticated caller, resolved from the session token.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (i Identity) IsZero() bool {
	return i.UserID == ""
}
