package domain

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID   int64
	Email    string
	IsActive bool
}
