package model

// TableName enumerates the physical table behind each entity, so raw
// queries and migrations never spell a table out by hand.
type TableName string

const (
	TableUsers         TableName = "users"
	TableCredentials   TableName = "credentials"
	TableOTPCodes      TableName = "otp_codes"
	TableRefreshTokens TableName = "refresh_tokens"
	TableRoles         TableName = "roles"
	TableUserRoles     TableName = "user_roles" // join table behind the many2many
)

func (t TableName) String() string {
	return string(t)
}
