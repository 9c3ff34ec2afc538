package service

import (
	"context"

	"frontend/client"
)

type UserService interface {
	Register(ctx context.Context, email string) (string, error)
}

type UserServiceImpl struct {
	api *client.StockAPIClient
}

func NewUserService(api *client.StockAPIClient) UserService {
	return &UserServiceImpl{api: api}
}

// Register creates the account and hands back the identifier the session will
// hold from now on. Email validation happens before this is ever called.
func (s *UserServiceImpl) Register(ctx context.Context, email string) (string, error) {
	return s.api.Register(ctx, email)
}
