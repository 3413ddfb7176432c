package service

import (
	"context"

	"festival-lineup/internal/model"
	"festival-lineup/internal/repository"
)

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	// Update 部分合併：未提供的欄位保留原值；空的 params 直接回傳目前資料
	Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id string) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, params)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
