package state

import "github.com/trackdeck/trackdeck/internal/models"

// ConversationState mirrors the chat history of the opened project and
// the comment thread of the opened issue. The two collections load
// independently but share a slice: both are message streams scoped to
// whatever the user has open.
type ConversationState struct {
	messages []models.ChatMessage
	chatGen  int
	chatErr  string
	loading  bool
	sending  bool

	comments    []models.Comment
	commentGen  int
	commentErr  string
	commentLoad bool
}

// NewConversationState creates an empty ConversationState.
func NewConversationState() *ConversationState {
	return &ConversationState{}
}

// --- chat ---

// BeginChatFetch marks a chat fetch in flight.
func (s *ConversationState) BeginChatFetch() int {
	s.chatGen++
	s.loading = true
	s.chatErr = ""
	return s.chatGen
}

// FinishChatFetch installs chat history unless gen is stale.
func (s *ConversationState) FinishChatFetch(gen int, messages []models.ChatMessage) bool {
	if gen != s.chatGen {
		return false
	}
	s.loading = false
	s.chatErr = ""
	s.messages = messages
	return true
}

// FailChatFetch records a chat fetch error unless gen is stale.
func (s *ConversationState) FailChatFetch(gen int, msg string) bool {
	if gen != s.chatGen {
		return false
	}
	s.loading = false
	s.chatErr = msg
	return true
}

// SetSending flags an outgoing message in flight; the send control
// disables itself while true.
func (s *ConversationState) SetSending(v bool) {
	s.sending = v
}

// Sending reports whether a message send is in flight.
func (s *ConversationState) Sending() bool {
	return s.sending
}

// AppendMessage adds a delivered message to the history.
func (s *ConversationState) AppendMessage(m models.ChatMessage) {
	s.messages = append(s.messages, m)
}

// Messages returns the chat history, oldest first.
func (s *ConversationState) Messages() []models.ChatMessage {
	return s.messages
}

// ChatLoading reports whether a chat fetch is in flight.
func (s *ConversationState) ChatLoading() bool {
	return s.loading
}

// ChatError returns the last chat error, "" when none.
func (s *ConversationState) ChatError() string {
	return s.chatErr
}

// --- comments ---

// BeginCommentFetch marks a comment fetch in flight.
func (s *ConversationState) BeginCommentFetch() int {
	s.commentGen++
	s.commentLoad = true
	s.commentErr = ""
	return s.commentGen
}

// FinishCommentFetch installs a comment thread unless gen is stale.
func (s *ConversationState) FinishCommentFetch(gen int, comments []models.Comment) bool {
	if gen != s.commentGen {
		return false
	}
	s.commentLoad = false
	s.commentErr = ""
	s.comments = comments
	return true
}

// FailCommentFetch records a comment fetch error unless gen is stale.
func (s *ConversationState) FailCommentFetch(gen int, msg string) bool {
	if gen != s.commentGen {
		return false
	}
	s.commentLoad = false
	s.commentErr = msg
	return true
}

// AppendComment adds a posted comment to the thread.
func (s *ConversationState) AppendComment(c models.Comment) {
	s.comments = append(s.comments, c)
}

// Comments returns the open issue's comment thread, oldest first.
func (s *ConversationState) Comments() []models.Comment {
	return s.comments
}

// CommentsLoading reports whether a comment fetch is in flight.
func (s *ConversationState) CommentsLoading() bool {
	return s.commentLoad
}

// CommentError returns the last comment error, "" when none.
func (s *ConversationState) CommentError() string {
	return s.commentErr
}

// Clear resets everything, e.g. when leaving the project page. Bumping
// the generations orphans any in-flight fetch.
func (s *ConversationState) Clear() {
	s.chatGen++
	s.commentGen++
	s.messages = nil
	s.comments = nil
	s.loading = false
	s.commentLoad = false
	s.sending = false
	s.chatErr = ""
	s.commentErr = ""
}
