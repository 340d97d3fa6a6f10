package repository

import (
	"context"

	"gorm.io/gorm"
)

type userRepository struct {
	database *gorm.DB
}

func (u *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{database: tx}
}

func (u *userRepository) Create(ctx context.Context, user *User) error {
	return u.database.WithContext(ctx).Model(User{}).Create(user).Error
}

func (u *userRepository) GetByUserID(ctx context.Context, userID string) (User, error) {
	var user User
	err := u.database.WithContext(ctx).Model(User{}).Where("user_id = ?", userID).First(&user).Error
	return user, err
}

func (u *userRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := u.database.WithContext(ctx).Model(User{}).Where("email = ?", email).First(&user).Error
	return user, err
}

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Create(ctx context.Context, user *User) error
	GetByUserID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepository{database: db}
}
