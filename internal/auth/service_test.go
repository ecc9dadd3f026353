package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/config"
	"github.com/Bovice22/axequacks-app-sub000/internal/users"
)

type fakeStaffRepo struct {
	byEmail map[string]*users.Staff
	byID    map[string]*users.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{
		byEmail: make(map[string]*users.Staff),
		byID:    make(map[string]*users.Staff),
	}
}

func (f *fakeStaffRepo) CreateStaff(_ context.Context, staff *users.Staff) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	f.byEmail[staff.Email] = staff
	f.byID[staff.ID.String()] = staff
	return nil
}

func (f *fakeStaffRepo) GetStaffByEmail(_ context.Context, email string) (*users.Staff, error) {
	staff, ok := f.byEmail[email]
	if !ok {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

func (f *fakeStaffRepo) GetStaffByID(_ context.Context, id string) (*users.Staff, error) {
	staff, ok := f.byID[id]
	if !ok {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

func (f *fakeStaffRepo) UpdateStaffPassword(_ context.Context, staffID string, hashedPassword string) error {
	staff, ok := f.byID[staffID]
	if !ok {
		return ErrStaffNotFound
	}
	staff.Password = hashedPassword
	return nil
}

func (f *fakeStaffRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func registerRequest() *RegisterRequest {
	return &RegisterRequest{
		FirstName: "Morgan",
		LastName:  "Reyes",
		Email:     "morgan@axequacks.com",
		Password:  "hunter22",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "morgan@axequacks.com", resp.Staff.Email)
	assert.Equal(t, string(users.RoleStaff), resp.Staff.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	login, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "morgan@axequacks.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.Staff.ID, login.Staff.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), testConfig())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrStaffAlreadyExists)
}

func TestRegisterDefaultsUnknownRole(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), testConfig())

	req := registerRequest()
	req.Role = "SUPERUSER"
	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleStaff), resp.Staff.Role)

	req2 := registerRequest()
	req2.Email = "admin@axequacks.com"
	req2.Role = "admin"
	resp, err = svc.Register(context.Background(), req2)
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleAdmin), resp.Staff.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), testConfig())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "morgan@axequacks.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown accounts are indistinguishable from bad passwords
	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@axequacks.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRoundTrip(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.Staff.ID, claims.StaffID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "axequacks", claims.Issuer)
}

func TestRefreshTokenFlow(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// An access token is not a refresh token
	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.RefreshToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), resp.Staff.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), resp.Staff.ID, &ChangePasswordRequest{
		CurrentPassword: "hunter22",
		NewPassword:     "newpassword",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "morgan@axequacks.com",
		Password: "newpassword",
	})
	require.NoError(t, err)
}

func TestValidateTokenRejectsTamperedSignature(t *testing.T) {
	svc := NewService(newFakeStaffRepo(), testConfig())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	other := NewService(newFakeStaffRepo(), &config.Config{
		JWT: config.JWTConfig{
			Secret:           "different-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	})

	_, err = other.ValidateToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	parts := strings.Split(resp.AccessToken, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"
	_, err = svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
