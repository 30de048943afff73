package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jobberBack/internal/models"
	"jobberBack/internal/repositories"
	"jobberBack/utils"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	OTPStore     *repositories.OTPStore
	SMS          *SMSClient
	TokenManager *utils.Manager
}

func generateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.SignUpResponse, error) {
	existing, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if existing.Email != "" {
		return models.SignUpResponse{}, models.ErrDuplicateEmail
	}

	existing, err = s.UserRepo.GetUserByPhone(ctx, user.Phone)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	if existing.Phone != "" {
		return models.SignUpResponse{}, models.ErrDuplicatePhone
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.SignUpResponse{}, err
	}
	user.Password = string(hashedPassword)

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.SignUpResponse{}, err
	}

	code := generateVerificationCode()
	if err := s.OTPStore.SaveCode(ctx, created.Phone, code); err != nil {
		return models.SignUpResponse{}, err
	}
	if err := s.SMS.Send(created.Phone, fmt.Sprintf("Your verification code: %s", code)); err != nil {
		return models.SignUpResponse{}, fmt.Errorf("send verification sms: %v", err)
	}

	created.Password = ""
	return models.SignUpResponse{User: created}, nil
}

func (s *UserService) VerifyPhone(ctx context.Context, phone, code string) error {
	if err := s.OTPStore.VerifyCode(ctx, phone, code); err != nil {
		return err
	}

	user, err := s.UserRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user.ID == 0 {
		return models.ErrUserNotFound
	}
	return s.UserRepo.MarkUserVerified(ctx, user.ID)
}

func (s *UserService) SignIn(ctx context.Context, phone, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		return models.Tokens{}, err
	}
	if user.ID == 0 {
		log.Printf("User not found: %s", phone)
		return models.Tokens{}, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for user: %s", phone)
		return models.Tokens{}, errors.New("invalid password")
	}

	accessToken, err := s.TokenManager.NewJWT(fmt.Sprint(user.ID), user.Role, accessTokenTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}

	session := models.Session{
		UserID:       user.ID,
		Role:         user.Role,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err := s.UserRepo.SaveSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}

	return models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh rotates the refresh token and issues a new access token for a
// valid, unexpired session.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (models.Tokens, error) {
	session, err := s.UserRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return models.Tokens{}, err
	}
	if session.UserID == 0 || time.Now().After(session.ExpiresAt) {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.TokenManager.NewJWT(fmt.Sprint(session.UserID), session.Role, accessTokenTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	newRefreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}

	session.RefreshToken = newRefreshToken
	session.ExpiresAt = time.Now().Add(refreshTokenTTL)
	if err := s.UserRepo.SaveSession(ctx, session); err != nil {
		return models.Tokens{}, err
	}

	return models.Tokens{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (s *UserService) SaveFCMToken(ctx context.Context, userID int, token string) error {
	return s.UserRepo.SaveFCMToken(ctx, userID, token)
}
