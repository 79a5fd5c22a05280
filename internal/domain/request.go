package domain

// ChatMessageRequest is the request body for sending a chat message.
type ChatMessageRequest struct {
	Content         string           `json:"content"`
	SessionID       string           `json:"session_id,omitempty"`
	QuestionContext *QuestionContext `json:"question_context,omitempty"`
	CodeContext     string           `json:"code_context,omitempty"`
}

// ChatMessageResponse is the response to a chat message.
type ChatMessageResponse struct {
	Message   Message `json:"message"`
	SessionID string  `json:"session_id"`
}

// VoiceMessageRequest is the request body for sending a voice message.
// AudioData is base64 encoded.
type VoiceMessageRequest struct {
	AudioData string `json:"audio_data"`
	SessionID string `json:"session_id,omitempty"`
}

// VoiceMessageResponse is the response to a voice message.
type VoiceMessageResponse struct {
	TranscribedText string  `json:"transcribed_text"`
	AIResponse      Message `json:"ai_response"`
	SessionID       string  `json:"session_id"`
}

// ConversationHistoryResponse is the full history of a session.
type ConversationHistoryResponse struct {
	SessionID    string    `json:"session_id"`
	Messages     []Message `json:"messages"`
	Context      Context   `json:"context"`
	MessageCount int       `json:"message_count"`
}
