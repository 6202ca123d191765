package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/auth"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/option"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepo) ListByGroup(ctx context.Context, group string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) SearchByName(ctx context.Context, text string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error             { return nil }
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, hash string) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error               { return nil }
func (f *fakeUserRepo) ExistsWithOptionValue(ctx context.Context, value string) (bool, error) {
	return false, nil
}

type fakeOptionRepo struct {
	values map[option.Type][]string
}

func (f *fakeOptionRepo) Create(ctx context.Context, opt option.Option) (option.Option, error) {
	return opt, nil
}
func (f *fakeOptionRepo) GetByID(ctx context.Context, id string) (option.Option, error) {
	return option.Option{}, option.ErrOptionNotFound
}
func (f *fakeOptionRepo) GetByTypeAndValue(ctx context.Context, optType option.Type, value string) (option.Option, error) {
	return option.Option{}, option.ErrOptionNotFound
}
func (f *fakeOptionRepo) List(ctx context.Context) ([]option.Option, error) { return nil, nil }
func (f *fakeOptionRepo) ListValues(ctx context.Context, optType option.Type) ([]string, error) {
	return f.values[optType], nil
}
func (f *fakeOptionRepo) Update(ctx context.Context, id, value string) error { return nil }
func (f *fakeOptionRepo) Delete(ctx context.Context, id string) error        { return nil }
func (f *fakeOptionRepo) Upsert(ctx context.Context, opt option.Option) error {
	return nil
}

type fakeJWTRepo struct {
	stored  map[string]bool
	revoked map[string]bool
}

func newFakeJWTRepo() *fakeJWTRepo {
	return &fakeJWTRepo{stored: make(map[string]bool), revoked: make(map[string]bool)}
}

func (f *fakeJWTRepo) CreateRefreshToken(ctx context.Context, userID, token string, expiresAt int64) error {
	f.stored[token] = true
	return nil
}

func (f *fakeJWTRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], nil
}

func (f *fakeJWTRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	f.revoked[token] = true
	return nil
}

func newTestService(userRepo *fakeUserRepo, jwtRepo *fakeJWTRepo) auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	optionRepo := &fakeOptionRepo{values: map[option.Type][]string{
		option.TypeHonor: {"Mr.", "Ms."},
		option.TypeGroup: {"East", "West"},
	}}
	return NewAuthService(nil, userRepo, optionRepo, jwtService, jwtRepo)
}

func registerReq(username, role, group string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Username: username,
		Password: "password123",
		Honor:    "Mr.",
		Name:     "Test Person",
		Role:     role,
		Group:    group,
		Year:     1990,
		Month:    4,
		Day:      12,
	}
}

func TestRegister_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestService(userRepo, newFakeJWTRepo())

	resp, err := svc.Register(context.Background(), registerReq("alice", "user", ""))

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "1990-04-12", resp.User.Birthday)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestService(userRepo, newFakeJWTRepo())

	_, err := svc.Register(context.Background(), registerReq("alice", "user", ""))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("alice", "user", ""))
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestRegister_ReporterRequiresGroup(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeJWTRepo())

	_, err := svc.Register(context.Background(), registerReq("rep", "reporter", ""))

	assert.Error(t, err)
}

func TestRegister_GroupOnlyPersistedForReporters(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestService(userRepo, newFakeJWTRepo())

	resp, err := svc.Register(context.Background(), registerReq("bob", "user", "East"))
	require.NoError(t, err)
	assert.Empty(t, resp.User.Group)

	resp, err = svc.Register(context.Background(), registerReq("rep", "reporter", "East"))
	require.NoError(t, err)
	assert.Equal(t, "East", resp.User.Group)
}

func TestLogin_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestService(userRepo, newFakeJWTRepo())

	_, err := svc.Register(context.Background(), registerReq("alice", "user", ""))
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "alice", Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestService(userRepo, newFakeJWTRepo())

	_, err := svc.Register(context.Background(), registerReq("alice", "user", ""))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Username: "alice", Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeJWTRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "ghost", Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestService(userRepo, newFakeJWTRepo())

	session, err := svc.Register(context.Background(), registerReq("alice", "user", ""))
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), session.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Empty(t, refreshed.RefreshToken)
	assert.Equal(t, "alice", refreshed.User.Username)
}

func TestRefresh_RevokedToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	jwtRepo := newFakeJWTRepo()
	svc := newTestService(userRepo, jwtRepo)

	session, err := svc.Register(context.Background(), registerReq("alice", "user", ""))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.RefreshToken))

	_, err = svc.Refresh(context.Background(), session.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeJWTRepo())

	_, err := svc.Refresh(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestService(userRepo, newFakeJWTRepo())

	session, err := svc.Register(context.Background(), registerReq("alice", "user", ""))
	require.NoError(t, err)

	// An access token must never pass for a refresh token.
	_, err = svc.Refresh(context.Background(), session.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRegistrationOptions(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), newFakeJWTRepo())

	opts, err := svc.RegistrationOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Mr.", "Ms."}, opts.Honors)
	assert.Equal(t, []string{"East", "West"}, opts.Groups)
	assert.Equal(t, []string{"Male", "Female", "Other"}, opts.Sexes)
	assert.Len(t, opts.Months, 12)
	assert.Len(t, opts.Days, 31)
	require.Len(t, opts.Years, 48)
	assert.Equal(t, time.Now().Year()-65, opts.Years[0])
}
