package model

// Identity is the verified subject of a session token.
type Identity struct {
	UserID int64
	Email  string
}

// TokenManager issues and validates signed session tokens.
type TokenManager interface {
	Issue(identity Identity) (string, error)
	Parse(token string) (Identity, error)
}
