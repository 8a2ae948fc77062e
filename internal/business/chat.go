package business

import (
	"fmt"
	"strings"
	"time"
)

// ChatMessage is a message posted to a room.
type ChatMessage struct {
	ID     string
	Room   string
	Author string
	Text   string
	SentAt time.Time
}

// ChatService stores room messages and notifies about new ones.
type ChatService struct {
	messages Repository[ChatMessage]
	clock    Clock
	notifier Notifier
}

// NewChatService creates a ChatService.
func NewChatService(messages Repository[ChatMessage], clock Clock, notifier Notifier) *ChatService {
	return &ChatService{messages: messages, clock: clock, notifier: notifier}
}

// Post adds a message to a room.
func (s *ChatService) Post(room, author, text string) (ChatMessage, error) {
	text = strings.TrimSpace(text)
	if room == "" || author == "" || text == "" {
		return ChatMessage{}, fmt.Errorf("room, author and text are required")
	}
	m := ChatMessage{
		ID:     fmt.Sprintf("%s-%06d", room, s.messages.Len()+1),
		Room:   room,
		Author: author,
		Text:   text,
		SentAt: s.clock.Now(),
	}
	s.messages.Put(m.ID, m)
	s.notifier.Notify("chat/"+room, author+": "+text)
	return m, nil
}

// History returns the messages of a room, oldest first.
func (s *ChatService) History(room string) []ChatMessage {
	var out []ChatMessage
	for _, m := range s.messages.List() {
		if m.Room == room {
			out = append(out, m)
		}
	}
	return out
}
