package chatroom

// Scope selects which rooms List returns.
type Scope string

const (
	ScopeAll  Scope = "all"
	ScopeMine Scope = "mine"
)

// Valid reports whether s is a known scope. "" is treated as ScopeAll by callers.
func (s Scope) Valid() bool {
	return s == "" || s == ScopeAll || s == ScopeMine
}

// Room is a discussion room.
type Room struct {
	ID          int64
	Name        string
	Description string
	Type        string
	Encrypted   bool
	LastMessage string
	MemberCount int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Rooms []Room
}

type CreateGeneralOutput struct {
	ID int64 // 0 when the remote did not return one
}
