package domain

// Role enumerates supported platform roles. Role membership is the sole
// authorization input for aggregate stats access.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)
