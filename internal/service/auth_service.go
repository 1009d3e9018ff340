package service

import (
	"errors"
	"os"
	"time"

	"github.com/angelina-2003/HushHours/internal/apperr"
	"github.com/angelina-2003/HushHours/internal/models"
	"github.com/angelina-2003/HushHours/internal/repository"
	"github.com/angelina-2003/HushHours/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repository.UserRepositoryInterface
}

func NewAuthService(userRepo repository.UserRepositoryInterface) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterInput struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	Password    string `json:"password"`
	Avatar      string `json:"avatar"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

// Register creates an account. The duplicate check is an exact, case-sensitive
// username match; only search is case-insensitive. The unique index backs up
// the pre-check, so a racing duplicate surfaces as the same typed error.
func (s *AuthService) Register(input RegisterInput) (*AuthResponse, error) {
	username := validation.NormalizeUsername(input.Username)
	if !validation.ValidateUsername(username) {
		return nil, apperr.InvalidInput("username must be 3-32 characters: letters, digits, underscore")
	}
	if !validation.ValidatePassword(input.Password) {
		return nil, apperr.InvalidInput("password is too short")
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, apperr.DuplicateUsername("username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Storage("register lookup failed", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage("password hashing failed", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
		DisplayName:  validation.TrimAndLimit(input.DisplayName, 80),
		Avatar:       input.Avatar,
		Age:          input.Age,
		Gender:       validation.TrimAndLimit(input.Gender, 20),
		Points:       0,
		MessageColor: models.DefaultMessageColor,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.DuplicateUsername("username already taken")
		}
		return nil, apperr.Storage("user insert failed", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, apperr.Storage("token signing failed", err)
	}

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *AuthService) Login(input LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(validation.NormalizeUsername(input.Username))
	if err != nil {
		return nil, apperr.Unauthenticated("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperr.Unauthenticated("invalid username or password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, apperr.Storage("token signing failed", err)
	}

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
