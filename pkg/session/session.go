package session

// AccountType classifies the authenticated account.
type AccountType string

// Known account types returned by the remote API.
const (
	AccountConsumer AccountType = "consumer"
	AccountSeller   AccountType = "seller"
	AccountAdmin    AccountType = "admin"
)

// User is the identity portion of a session as returned by the
// remote API's auth endpoints.
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	AccountType AccountType `json:"account_type"`
}

// Session is the in-memory record of the current visitor's
// authenticated identity and bearer credential.
//
// User and Token are set together on login. The one tolerated
// exception is hydration from the legacy bare-token key, which yields
// a token with a nil User until the profile is refreshed from the
// server.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Authenticated reports whether the session carries a bearer credential.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
