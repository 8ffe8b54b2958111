package domain

type User struct {
	ID       int64
	FullName string
	Email    string
}

// Session is the in-memory authentication state. User is set only after the
// token has been validated against the backend; Loading is true while the
// startup bootstrap is still resolving a persisted token.
type Session struct {
	Token   string
	User    *User
	Loading bool
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

type Credentials struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  User
}

type RegisterRequest struct {
	FullName string
	Email    string
	Password string
	VNeID    string
}

// Registration is the full register response. Identity carries auxiliary
// identity-verification data when the backend performed a VNeID check.
type Registration struct {
	Token    string
	User     User
	Identity *IdentityInfo
}

type IdentityInfo struct {
	Phone string
}
