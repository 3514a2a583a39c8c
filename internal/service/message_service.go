package service

import (
	"context"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// MessageService defines the business logic for contact form messages.
type MessageService interface {
	// Submit stores a new message. It is always created unread; the
	// msg.ID and CreatedAt are populated by the store.
	Submit(ctx context.Context, msg *model.Message) error
	List(ctx context.Context) ([]*model.Message, error)
	// SetRead flips the read flag and returns the updated message.
	SetRead(ctx context.Context, id string, read bool) (*model.Message, error)
	UnreadCount(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

type messageServiceImpl struct {
	repo repository.MessageRepository
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageServiceImpl{repo: repo}
}

func (s *messageServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	msg.ID = ""
	return s.repo.Create(ctx, msg)
}

func (s *messageServiceImpl) List(ctx context.Context) ([]*model.Message, error) {
	return s.repo.List(ctx)
}

func (s *messageServiceImpl) SetRead(ctx context.Context, id string, read bool) (*model.Message, error) {
	return s.repo.SetRead(ctx, id, read)
}

func (s *messageServiceImpl) UnreadCount(ctx context.Context) (int, error) {
	return s.repo.UnreadCount(ctx)
}

func (s *messageServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
