package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/logger"
)

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	// Register creates the user and their profile in one transaction.
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, username, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, accessClaims *TokenClaims) error
}

type authService struct {
	db     *gorm.DB
	users  repository.UserRepository
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, users repository.UserRepository, tokens *TokenService) AuthService {
	return &authService{db: db, users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:       uuid.New().String(),
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &model.Profile{ID: uuid.New().String(), UserID: user.ID, IsPublic: true}
		return tx.Create(profile).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	logger.Info("user registered", zap.String("user", user.ID), zap.String("username", user.Username))
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (TokenPair, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	return s.tokens.IssuePair(user.ID)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.Parse(ctx, refreshToken, TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return s.tokens.IssuePair(claims.Subject)
}

func (s *authService) Logout(ctx context.Context, accessClaims *TokenClaims) error {
	return s.tokens.Revoke(ctx, accessClaims)
}
