package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
	"herzlink/internal/repository"
)

// ConversationSummary is one derived inbox entry: the non-self participant,
// the most recent message as preview, and the count of unread inbound
// messages.
type ConversationSummary struct {
	PartnerUserID string         `json:"partnerUserId"`
	PartnerName   string         `json:"partnerName"`
	PartnerAvatar string         `json:"partnerAvatar"`
	LastMessage   *model.Message `json:"lastMessage"`
	UnreadCount   int            `json:"unreadCount"`
}

// ChatService derives conversations from the flat message list and handles
// sending and reading messages.
type ChatService interface {
	ListConversations(ctx context.Context, userID uuid.UUID) ([]ConversationSummary, error)
	OpenConversation(ctx context.Context, userID, partnerID uuid.UUID) ([]model.Message, error)
	SendMessage(ctx context.Context, fromID, toID uuid.UUID, content string) (*model.Message, error)
}

type chatService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// NewChatService creates a new chat service.
func NewChatService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, profileRepo repository.ProfileRepository) ChatService {
	return &chatService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// partnerChat is the per-partner accumulator of aggregateConversations.
type partnerChat struct {
	last   model.Message
	unread int
}

// aggregateConversations groups a flat, unordered message list into per-partner
// summaries in a single pass. For each message the partner is whichever
// endpoint is not the current user; self-addressed messages are skipped. The
// unread counter counts only inbound unread messages. Summaries are sorted by
// preview timestamp, newest first; an entry without a preview would sort last.
func aggregateConversations(messages []model.Message, currentUserID uuid.UUID) []ConversationSummary {
	chats := make(map[uuid.UUID]*partnerChat)
	order := make([]uuid.UUID, 0)

	for _, msg := range messages {
		var partnerID uuid.UUID
		inboundUnread := false

		switch {
		case msg.FromUserID == currentUserID:
			partnerID = msg.ToUserID
		case msg.ToUserID == currentUserID:
			partnerID = msg.FromUserID
			inboundUnread = !msg.Read
		default:
			continue
		}
		if partnerID == currentUserID {
			// self-addressed
			continue
		}

		chat, ok := chats[partnerID]
		if !ok {
			chat = &partnerChat{last: msg}
			chats[partnerID] = chat
			order = append(order, partnerID)
		} else if msg.Timestamp > chat.last.Timestamp {
			chat.last = msg
		}
		if inboundUnread {
			chat.unread++
		}
	}

	summaries := make([]ConversationSummary, 0, len(order))
	for _, partnerID := range order {
		chat := chats[partnerID]
		last := chat.last
		summaries = append(summaries, ConversationSummary{
			PartnerUserID: partnerID.String(),
			LastMessage:   &last,
			UnreadCount:   chat.unread,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Timestamp > b.Timestamp
	})
	return summaries
}

// ListConversations builds the user's inbox. Partners that do not resolve to
// a registered user are dropped; avatars come from the partner's profile with
// a placeholder fallback.
func (s *chatService) ListConversations(ctx context.Context, userID uuid.UUID) ([]ConversationSummary, error) {
	messages, err := s.messageRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	summaries := aggregateConversations(messages, userID)
	if len(summaries) == 0 {
		return summaries, nil
	}

	partnerIDs := make([]uuid.UUID, 0, len(summaries))
	for _, summary := range summaries {
		id, err := uuid.Parse(summary.PartnerUserID)
		if err != nil {
			continue
		}
		partnerIDs = append(partnerIDs, id)
	}

	partners, err := s.userRepo.FindByIDs(ctx, partnerIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve partners: %w", err)
	}
	byID := make(map[string]model.User, len(partners))
	for _, partner := range partners {
		byID[partner.ID.String()] = partner
	}

	resolved := summaries[:0]
	for _, summary := range summaries {
		partner, ok := byID[summary.PartnerUserID]
		if !ok {
			continue
		}
		summary.PartnerName = partner.Name
		summary.PartnerAvatar = s.partnerAvatar(ctx, partner)
		resolved = append(resolved, summary)
	}
	return resolved, nil
}

func (s *chatService) partnerAvatar(ctx context.Context, partner model.User) string {
	if profile, err := s.profileRepo.FindByUserID(ctx, partner.ID); err == nil && profile.Avatar != "" {
		return profile.Avatar
	}
	initial := "?"
	if name := []rune(strings.TrimSpace(partner.Name)); len(name) > 0 {
		initial = strings.ToUpper(string(name[0]))
	}
	return "https://via.placeholder.com/150/4F46E5/FFFFFF?text=" + initial
}

// OpenConversation returns the messages between the two participants sorted
// oldest first. As a side effect every unread inbound message in the
// conversation is marked read; merely opening the conversation is the read
// acknowledgement, there is no separate action.
func (s *chatService) OpenConversation(ctx context.Context, userID, partnerID uuid.UUID) ([]model.Message, error) {
	messages, err := s.messageRepo.ListBetween(ctx, userID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list conversation: %w", err)
	}

	var unreadIDs []string
	for i := range messages {
		if messages[i].ToUserID == userID && !messages[i].Read {
			unreadIDs = append(unreadIDs, messages[i].ID)
			messages[i].Read = true
		}
	}
	if len(unreadIDs) > 0 {
		if _, err := s.messageRepo.MarkRead(ctx, unreadIDs); err != nil {
			return nil, fmt.Errorf("mark messages read: %w", err)
		}
	}
	return messages, nil
}

// SendMessage appends a new message. IDs are millisecond strings and read
// starts false; only the recipient's inbox view ever flips it.
func (s *chatService) SendMessage(ctx context.Context, fromID, toID uuid.UUID, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.ErrEmptyMessage
	}
	if fromID == toID {
		return nil, apperrors.ErrSelfMessage
	}

	now := time.Now().UnixMilli()
	message := &model.Message{
		ID:         strconv.FormatInt(now, 10),
		FromUserID: fromID,
		ToUserID:   toID,
		Content:    content,
		Timestamp:  now,
		Read:       false,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}
