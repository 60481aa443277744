package conversationrequests

// CreateConversationRequest represents the request to create a conversation.
// A missing title gets the server-side placeholder; a provided title must
// not be blank.
type CreateConversationRequest struct {
	Title *string `json:"title,omitempty"`
}

// AddMessageRequest represents the request to append a user message to an
// existing conversation.
type AddMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// StartConversationRequest represents the request to start a new
// conversation from its first user message.
type StartConversationRequest struct {
	Content string `json:"content" binding:"required"`
}
