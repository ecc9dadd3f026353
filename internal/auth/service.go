package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/config"
	"github.com/Bovice22/axequacks-app-sub000/internal/users"
	"github.com/Bovice22/axequacks-app-sub000/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrStaffAlreadyExists = errors.New("staff member already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, staffID string, req *ChangePasswordRequest) error
	ValidateToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo   Repository
	config *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		config: cfg,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrStaffAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Role defaults to STAFF; unrecognized values fall back rather than fail
	role := strings.ToUpper(req.Role)
	if !users.IsValidRole(role) {
		role = string(users.RoleStaff)
	}

	staff := &users.Staff{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      users.Role(role),
	}

	if err := s.repo.CreateStaff(ctx, staff); err != nil {
		return nil, err
	}

	tokenPair, err := s.generateTokenPair(staff.ID.String(), staff.Email, string(staff.Role))
	if err != nil {
		return nil, err
	}

	return s.authResponse(staff, tokenPair), nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	staff, err := s.repo.GetStaffByEmail(ctx, req.Email)
	if err != nil {
		if err == ErrStaffNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)); err != nil {
		logger.GetDefault().LogAuthFailure(ctx, "password mismatch", req.Email)
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(staff.ID.String(), staff.Email, string(staff.Role))
	if err != nil {
		return nil, err
	}

	logger.GetDefault().LogAuthSuccess(ctx, staff.ID.String(), "password")
	return s.authResponse(staff, tokenPair), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != "refresh" {
		return nil, ErrInvalidToken
	}

	// Verify the account still exists
	staff, err := s.repo.GetStaffByID(ctx, claims.StaffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	return s.generateTokenPair(staff.ID.String(), staff.Email, string(staff.Role))
}

func (s *service) ChangePassword(ctx context.Context, staffID string, req *ChangePasswordRequest) error {
	staff, err := s.repo.GetStaffByID(ctx, staffID)
	if err != nil {
		return ErrStaffNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdateStaffPassword(ctx, staffID, string(hashedPassword))
}

func (s *service) ValidateToken(tokenString string) (*JWTClaims, error) {
	return s.validateToken(tokenString)
}

func (s *service) authResponse(staff *users.Staff, tokenPair *TokenPair) *AuthResponse {
	return &AuthResponse{
		Staff: StaffResponse{
			ID:        staff.ID.String(),
			FirstName: staff.FirstName,
			LastName:  staff.LastName,
			Email:     staff.Email,
			Role:      string(staff.Role),
			CreatedAt: staff.CreatedAt,
			UpdatedAt: staff.UpdatedAt,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}
}

func (s *service) generateTokenPair(staffID, email, role string) (*TokenPair, error) {
	now := time.Now()

	accessClaims := JWTClaims{
		StaffID: staffID,
		Email:   email,
		Role:    role,
		Type:    "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.JWTExpiresIn)),
			Issuer:    "axequacks",
			Subject:   staffID,
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	refreshClaims := JWTClaims{
		StaffID: staffID,
		Email:   email,
		Role:    role,
		Type:    "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.RefreshExpiresIn)),
			Issuer:    "axequacks",
			Subject:   staffID,
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.config.JWT.JWTExpiresIn.Seconds()),
	}, nil
}

func (s *service) validateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
