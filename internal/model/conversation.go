package model

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationMessage is one turn of the chat transcript. The transcript is
// client-held and re-sent with each request; nothing is persisted server-side.
type ConversationMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
