package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"library-management/domain"
	"library-management/repository"
)

type membershipService struct {
	database *gorm.DB
	users    repository.UserRepository
}

func (s *membershipService) AddUser(ctx context.Context, req domain.AddUserRequest) (repository.User, error) {
	var user repository.User
	err := s.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		_, err := users.GetByEmail(ctx, req.Email)
		if err == nil {
			return domain.ErrDuplicateEmail
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up email %q: %w", req.Email, err)
		}
		user = repository.User{
			UserID: uuid.New().String(),
			Name:   req.Name,
			Email:  req.Email,
		}
		if err = users.Create(ctx, &user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	return user, err
}

type MembershipService interface {
	AddUser(ctx context.Context, req domain.AddUserRequest) (repository.User, error)
}

func NewMembershipService(db *gorm.DB, users repository.UserRepository) MembershipService {
	return &membershipService{database: db, users: users}
}
