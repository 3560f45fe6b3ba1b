package domain

// TokenPurpose selects which secret and lifetime a token is minted and
// verified with. Each purpose has its own independent signing key so a token
// issued for one purpose can never be replayed for another.
type TokenPurpose string

const (
	// TokenPurposeAccess authorizes individual API requests. Short lived.
	TokenPurposeAccess TokenPurpose = "access"
	// TokenPurposeRefresh is exchanged for a new token pair. Long lived,
	// persisted on the user record, single valid instance per user.
	TokenPurposeRefresh TokenPurpose = "refresh"
	// TokenPurposeReset authorizes one password change within a bounded
	// window. Never persisted; validity is signature and expiry alone.
	TokenPurposeReset TokenPurpose = "reset"
)
