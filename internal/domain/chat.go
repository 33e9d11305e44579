package domain

// Roles used in caller-supplied conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single conversation turn as supplied by the caller.
// Histories are ordered chronologically and that order is preserved all the
// way to the upstream request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
