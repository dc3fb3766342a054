package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/auth"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
	byID    map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) GetByUID(ctx context.Context, uid string) (employee.Employee, error) {
	return employee.Employee{UID: uid, Name: "Ana Lima"}, nil
}
func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}
func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

func newTestAuthService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	account := user.User{
		ID:           "u-1",
		Email:        "ana@casarosa.com",
		PasswordHash: string(hash),
		EmployeeUID:  "emp-ana",
		Role:         user.RoleColaborador,
		Active:       true,
	}
	inactive := user.User{
		ID:           "u-2",
		Email:        "saiu@casarosa.com",
		PasswordHash: string(hash),
		Role:         user.RoleColaborador,
		Active:       false,
	}

	users := &fakeUserRepo{
		byEmail: map[string]user.User{account.Email: account, inactive.Email: inactive},
		byID:    map[string]user.User{account.ID: account, inactive.ID: inactive},
	}
	tokens := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewService(users, &fakeEmployeeRepo{}, tokens)
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@casarosa.com",
		Password: "s3nha-forte",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@casarosa.com",
		Password: "errada",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ninguem@casarosa.com",
		Password: "s3nha-forte",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "saiu@casarosa.com",
		Password: "s3nha-forte",
	})

	assert.ErrorIs(t, err, user.ErrInactiveUser)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newTestAuthService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@casarosa.com",
		Password: "s3nha-forte",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The first refresh token is spent.
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMe(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Me(context.Background(), user.Actor{
		UserID:      "u-1",
		EmployeeUID: "emp-ana",
		Email:       "ana@casarosa.com",
		Role:        user.RoleColaborador,
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", resp.UserID)
	require.NotNil(t, resp.EmployeeUID)
	assert.Equal(t, "emp-ana", *resp.EmployeeUID)
	assert.Equal(t, "Ana Lima", resp.Name)
}
