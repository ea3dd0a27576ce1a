// Package chat implements the in-memory chat state: the membership registry,
// the ordered message log and the Service facade used by the transport.
package chat

// Token identifies a joined member for the lifetime of the process.
type Token uint64

type Member struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChatMessage is an immutable log entry. Username is copied at post time.
type ChatMessage struct {
	Sequence uint64 `json:"sequence"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// JoinResult reports the outcome of a join. Token is zero when Accepted is
// false.
type JoinResult struct {
	Token    Token
	Accepted bool
}

// Seed is bootstrap state imported before the service accepts requests.
// Messages are attributed to Username verbatim and receive fresh sequence
// numbers in slice order.
type Seed struct {
	Members  []Member      `json:"members"`
	Messages []SeedMessage `json:"messages"`
}

type SeedMessage struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}
