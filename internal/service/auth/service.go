package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/auth"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/jwt"
)

type Service struct {
	users     user.UserRepository
	employees employee.EmployeeRepository
	tokens    jwt.Service
}

func NewService(users user.UserRepository, employees employee.EmployeeRepository, tokens jwt.Service) *Service {
	return &Service{users: users, employees: employees, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !account.Active {
		return auth.TokenResponse{}, user.ErrInactiveUser
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(account)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if !account.Active {
		return auth.TokenResponse{}, user.ErrInactiveUser
	}

	// One refresh one rotation: the presented token stops working.
	s.tokens.RevokeToken(refreshToken)

	return s.issueTokens(account)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.tokens.RevokeToken(refreshToken)
	}
	return nil
}

func (s *Service) Me(ctx context.Context, actor user.Actor) (auth.MeResponse, error) {
	resp := auth.MeResponse{
		UserID: actor.UserID,
		Email:  actor.Email,
		Role:   string(actor.Role),
	}
	if actor.EmployeeUID != "" {
		uid := actor.EmployeeUID
		resp.EmployeeUID = &uid
		if emp, err := s.employees.GetByUID(ctx, uid); err == nil {
			resp.Name = emp.Name
		}
	}
	return resp, nil
}

func (s *Service) issueTokens(account user.User) (auth.TokenResponse, error) {
	var employeeUID *string
	if account.EmployeeUID != "" {
		employeeUID = &account.EmployeeUID
	}

	accessToken, accessExpiresAt, err := s.tokens.GenerateAccessToken(account.ID, account.Email, employeeUID, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := s.tokens.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}
