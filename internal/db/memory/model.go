package memory

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultLimit is how many trailing messages are replayed into a model call.
const DefaultLimit = 20

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
