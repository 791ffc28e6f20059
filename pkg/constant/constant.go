package constant

const (
	// DefaultUserRole is assigned to every account created through signup.
	DefaultUserRole = "user"

	// BcryptCost is the work factor used when hashing signup passwords.
	BcryptCost = 12

	// UserAgentMaxLength caps the user agent stored on a login audit row.
	UserAgentMaxLength = 255

	// AdminListLimit caps every admin listing query.
	AdminListLimit = 500
)
