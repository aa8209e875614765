package validate

import (
	"fmt"

	"ai-tireshop-be/internal/constant"
	"ai-tireshop-be/pkg/chat/chaterr"
	"ai-tireshop-be/pkg/chat/sanitize"
)

// HistoryEntry is one prior turn replayed by the client.
type HistoryEntry struct {
	Role    string
	Content string
}

// Request is the normalized, sanitized chat request produced by Validate.
type Request struct {
	Message        string
	SessionId      string
	Channel        string
	History        []HistoryEntry
	CurrentContext string
}

var validChannels = map[string]bool{
	constant.ChatChannelWeb:      true,
	constant.ChatChannelWhatsapp: true,
	constant.ChatChannelVoice:    true,
}

var validRoles = map[string]bool{
	constant.ChatMessageRoleUser:      true,
	constant.ChatMessageRoleAssistant: true,
	constant.ChatMessageRoleSystem:    true,
}

// Validate applies the request rules in order, failing fast on the first
// violation. body is the decoded JSON payload; a nil or non-object body is
// rejected outright. Invalid history entries are dropped silently rather
// than rejecting the whole request.
func Validate(body map[string]interface{}) (*Request, *chaterr.Error) {
	if body == nil {
		return nil, chaterr.New(chaterr.KindMalformedRequest, "request body must be a JSON object")
	}

	message, ok := body["message"].(string)
	if !ok {
		return nil, chaterr.New(chaterr.KindInvalidMessage, "message is required and must be a string")
	}
	message = sanitize.Clean(message)
	if message == "" {
		return nil, chaterr.New(chaterr.KindInvalidMessage, "message must not be empty")
	}
	if len([]rune(message)) > constant.MaxMessageLength {
		return nil, chaterr.New(chaterr.KindInvalidMessage,
			fmt.Sprintf("message must be at most %d characters", constant.MaxMessageLength))
	}

	sessionId, ok := body["sessionId"].(string)
	if !ok {
		return nil, chaterr.New(chaterr.KindInvalidSession, "sessionId is required and must be a string")
	}
	sessionId = sanitize.Clean(sessionId)
	if sessionId == "" {
		return nil, chaterr.New(chaterr.KindInvalidSession, "sessionId must not be empty")
	}
	if len([]rune(sessionId)) > constant.MaxSessionIdLength {
		return nil, chaterr.New(chaterr.KindInvalidSession,
			fmt.Sprintf("sessionId must be at most %d characters", constant.MaxSessionIdLength))
	}

	channel := constant.ChatChannelWeb
	if raw, present := body["channel"]; present && raw != nil {
		s, isString := raw.(string)
		if !isString || !validChannels[s] {
			return nil, chaterr.New(chaterr.KindInvalidChannel, "channel must be one of web, whatsapp, voice")
		}
		channel = s
	}

	var history []HistoryEntry
	if raw, present := body["conversationHistory"]; present && raw != nil {
		entries, isArray := raw.([]interface{})
		if !isArray {
			return nil, chaterr.New(chaterr.KindMalformedRequest, "conversationHistory must be an array")
		}
		history = normalizeHistory(entries)
	}

	currentContext := ""
	if raw, present := body["currentContext"]; present {
		if s, isString := raw.(string); isString {
			currentContext = sanitize.CleanAndTruncate(s, constant.MaxContextLength)
		}
	}

	return &Request{
		Message:        message,
		SessionId:      sessionId,
		Channel:        channel,
		History:        history,
		CurrentContext: currentContext,
	}, nil
}

// normalizeHistory keeps the last MaxHistoryEntries entries, dropping any
// entry with an unknown role or oversized content.
func normalizeHistory(entries []interface{}) []HistoryEntry {
	if len(entries) > constant.MaxHistoryEntries {
		entries = entries[len(entries)-constant.MaxHistoryEntries:]
	}

	result := make([]HistoryEntry, 0, len(entries))
	for _, raw := range entries {
		obj, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		role, _ := obj["role"].(string)
		if !validRoles[role] {
			continue
		}
		content, ok := obj["content"].(string)
		if !ok {
			continue
		}
		content = sanitize.Clean(content)
		if content == "" || len([]rune(content)) > constant.MaxMessageLength {
			continue
		}
		result = append(result, HistoryEntry{Role: role, Content: content})
	}
	return result
}
