package service

import (
	"context"
	"strings"

	"festival-lineup/internal/model"
	"festival-lineup/internal/repository"
)

type UserService interface {
	// Register 新增報名；重複 email 由儲存層唯一約束擋下並回傳 ErrEmailAlreadyRegistered
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
}

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

func (s *UserServiceImpl) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	user := req.ToUser()
	user.Email = strings.TrimSpace(user.Email)

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, user)
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}
