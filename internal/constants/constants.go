package constants

const (
	// Context keys set by the auth middleware.
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "user_email"
	ContextKeyRole   = "user_role"

	// MinPasswordLength is enforced on password changes.
	MinPasswordLength = 8

	// BcryptCost used when hashing passwords.
	BcryptCost = 10
)
