package userapp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"plume/internal/core/apperr"
	userEntity "plume/internal/core/user"
	userPort "plume/internal/ports/user"
)

const tokenLifetime = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// Register creates a new account with a bcrypt password hash. A taken
// username is a ValidationError, not an internal failure.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*userPort.UserDTO, error) {
	if username == "" {
		return nil, apperr.Invalid("username", "must not be empty")
	}
	if password == "" {
		return nil, apperr.Invalid("password", "must not be empty")
	}

	if _, err := s.UserRepository.FindByUsername(ctx, username); err == nil {
		return nil, apperr.Invalid("username", "already taken")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &userPort.UserDTO{ID: u.ID, Username: u.Username, Email: u.Email}, nil
}

// Login checks the credentials and issues a signed token.
func (s *UserService) Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenLifetime)
	claims := &jwt.StandardClaims{
		Subject:   strconv.FormatUint(uint64(u.ID), 10),
		Issuer:    "plume",
		ExpiresAt: expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &userPort.LoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}
