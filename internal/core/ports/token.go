package ports

// TokenClaims is the verified identity carried by a session token.
type TokenClaims struct {
	UserID   int64
	Username string
	Role     string
}

// TokenIssuer creates signed, time-limited session tokens.
type TokenIssuer interface {
	Issue(userID int64, username, role string) (string, error)
}

// TokenVerifier checks signature integrity and expiry of a session token.
// Validity is self-contained in the signed payload; no revocation check and
// no storage lookup are performed.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}
