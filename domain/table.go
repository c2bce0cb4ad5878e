package domain

// Table is a mongo collection name
type Table string

const (
	TableRegistrationSessions Table = "registration_sessions"
)
