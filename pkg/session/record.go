package session

import "encoding/json"

// RecordKind discriminates the shapes a durable session record can take.
type RecordKind int

const (
	// RecordEmpty means no usable record: the key was absent, held
	// malformed data, or held a record without a token.
	RecordEmpty RecordKind = iota
	// RecordFlat is the current on-disk shape: {"user":..., "token":...}.
	RecordFlat
	// RecordNested is the residual legacy shape that wraps the same
	// fields under a "state" envelope: {"state":{"user":...,"token":...}}.
	RecordNested
)

// Record is the decoded durable session record.
type Record struct {
	Kind  RecordKind
	User  *User
	Token string
}

// recordEnvelope accepts both the flat and the nested shape in a
// single decode pass.
type recordEnvelope struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
	State *struct {
		User  *User  `json:"user"`
		Token string `json:"token"`
	} `json:"state"`
}

// DecodeRecord parses raw durable storage bytes into a Record.
//
// Malformed JSON and token-less records both decode to RecordEmpty:
// a broken record must read as "absent" so hydration can fall through
// to the next storage location instead of failing. When both shapes
// carry a token, the flat fields win.
func DecodeRecord(data []byte) Record {
	if len(data) == 0 {
		return Record{Kind: RecordEmpty}
	}

	var env recordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Record{Kind: RecordEmpty}
	}

	if env.Token != "" {
		return Record{Kind: RecordFlat, User: env.User, Token: env.Token}
	}
	if env.State != nil && env.State.Token != "" {
		return Record{Kind: RecordNested, User: env.State.User, Token: env.State.Token}
	}
	return Record{Kind: RecordEmpty}
}

// EncodeRecord serializes a session into the flat durable shape.
// New writes never produce the nested shape.
func EncodeRecord(user *User, token string) ([]byte, error) {
	return json.Marshal(Session{User: user, Token: token})
}
