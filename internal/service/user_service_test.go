package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/service"
	"github.com/wodmeet/wodmeet/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const (
	goodPassword  = "Kettlebell24"
	otherPassword = "Snatch2024x"
)

func newUserService(t *testing.T) (service.UserService, *MockUserStore, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock := newTxDB(t)
	users := &MockUserStore{}
	t.Cleanup(func() { users.AssertExpectations(t) })

	svc, err := service.NewUserService(users, db, service.NewHashGate(2), bcrypt.MinCost, quietLogger())
	require.NoError(t, err)
	return svc, users, sqlMock
}

func userWithPassword(t *testing.T, password string) *domain.User {
	t.Helper()
	user, err := domain.NewUser("coach", false)
	require.NoError(t, err)
	require.NoError(t, user.SetPasswordWithCost(password, bcrypt.MinCost))
	return user
}

func TestNewUserService_RequiresDependencies(t *testing.T) {
	_, err := service.NewUserService(nil, nil, nil, 0, nil)
	assert.Error(t, err)
}

func TestUserService_CreateUser(t *testing.T) {
	svc, users, sqlMock := newUserService(t)

	sqlMock.ExpectBegin()
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "coach" &&
			strings.HasPrefix(u.PasswordHash, u.Salt) &&
			len(u.Salt) == 29 &&
			u.IsSuperuser
	})).Return(nil)
	sqlMock.ExpectCommit()

	user, err := svc.CreateUser(context.Background(), "coach", goodPassword, true)
	require.NoError(t, err)
	assert.True(t, user.CheckPassword(goodPassword))
	assert.False(t, user.CheckPassword(otherPassword))

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestUserService_CreateUser_WeakPassword(t *testing.T) {
	svc, _, _ := newUserService(t)

	user, err := svc.CreateUser(context.Background(), "coach", "short", false)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)

	var policyErr *domain.PasswordPolicyError
	require.ErrorAs(t, err, &policyErr)
	assert.Contains(t, policyErr.Failed, domain.RuleMinLength)
}

func TestUserService_CreateUser_UsernameTaken(t *testing.T) {
	svc, users, sqlMock := newUserService(t)

	sqlMock.ExpectBegin()
	users.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("insert: %w", store.ErrUsernameExists))
	sqlMock.ExpectRollback()

	_, err := svc.CreateUser(context.Background(), "coach", goodPassword, false)
	assert.ErrorIs(t, err, store.ErrUsernameExists)
}

func TestUserService_CreateUser_CancelledWhileWaitingForHash(t *testing.T) {
	db, _ := newTxDB(t)
	users := &MockUserStore{}
	gate := service.NewHashGate(1)
	svc, err := service.NewUserService(users, db, gate, bcrypt.MinCost, quietLogger())
	require.NoError(t, err)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = gate.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.CreateUser(ctx, "coach", goodPassword, false)
	assert.ErrorIs(t, err, context.Canceled)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Authenticate(t *testing.T) {
	svc, users, _ := newUserService(t)
	user := userWithPassword(t, goodPassword)

	users.On("GetByUsername", mock.Anything, "coach").Return(user, nil)
	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, store.ErrUserNotFound)

	got, err := svc.Authenticate(context.Background(), "coach", goodPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(context.Background(), "coach", otherPassword)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "ghost", goodPassword)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserService_Authenticate_StoreFailure(t *testing.T) {
	svc, users, _ := newUserService(t)
	dbErr := errors.New("connection reset")
	users.On("GetByUsername", mock.Anything, "coach").Return(nil, dbErr)

	_, err := svc.Authenticate(context.Background(), "coach", goodPassword)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUserService_ChangePassword(t *testing.T) {
	svc, users, sqlMock := newUserService(t)
	user := userWithPassword(t, goodPassword)
	oldHash := user.PasswordHash
	locked := *user

	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sqlMock.ExpectBegin()
	users.On("GetByIDForUpdate", mock.Anything, user.ID).Return(&locked, nil)
	users.On("Update", mock.Anything, user).Return(nil)
	sqlMock.ExpectCommit()

	require.NoError(t, svc.ChangePassword(context.Background(), user.ID, goodPassword, otherPassword))
	assert.NotEqual(t, oldHash, user.PasswordHash)
	assert.True(t, user.CheckPassword(otherPassword))
	assert.False(t, user.CheckPassword(goodPassword))
}

func TestUserService_ChangePassword_WrongCurrentSkipsTransaction(t *testing.T) {
	svc, users, _ := newUserService(t)
	user := userWithPassword(t, goodPassword)
	oldHash, oldSalt := user.PasswordHash, user.Salt

	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	err := svc.ChangePassword(context.Background(), user.ID, otherPassword, "Another1pass")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Equal(t, oldHash, user.PasswordHash)
	assert.Equal(t, oldSalt, user.Salt)
	users.AssertNotCalled(t, "GetByIDForUpdate", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_ChangePassword_ConcurrentChangeWins(t *testing.T) {
	svc, users, sqlMock := newUserService(t)
	user := userWithPassword(t, goodPassword)
	// Another request changed the password after this one verified it.
	locked := userWithPassword(t, "Jerk2025long")
	locked.ID = user.ID

	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	sqlMock.ExpectBegin()
	users.On("GetByIDForUpdate", mock.Anything, user.ID).Return(locked, nil)
	sqlMock.ExpectRollback()

	err := svc.ChangePassword(context.Background(), user.ID, goodPassword, otherPassword)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_ChangePassword_UnknownUser(t *testing.T) {
	svc, users, _ := newUserService(t)
	id := uuid.New()

	users.On("GetByID", mock.Anything, id).Return(nil, store.ErrUserNotFound)

	err := svc.ChangePassword(context.Background(), id, goodPassword, otherPassword)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_ChangePassword_WeakNewPassword(t *testing.T) {
	svc, _, _ := newUserService(t)

	err := svc.ChangePassword(context.Background(), uuid.New(), goodPassword, "no digits here")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestUserService_GetAndDelete(t *testing.T) {
	svc, users, sqlMock := newUserService(t)
	user := userWithPassword(t, goodPassword)
	missing := uuid.New()

	users.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	users.On("GetByID", mock.Anything, missing).Return(nil, store.ErrUserNotFound)

	got, err := svc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.GetUser(context.Background(), missing)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	sqlMock.ExpectBegin()
	users.On("Delete", mock.Anything, user.ID).Return(nil)
	sqlMock.ExpectCommit()
	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))

	sqlMock.ExpectBegin()
	users.On("Delete", mock.Anything, missing).Return(store.ErrUserNotFound)
	sqlMock.ExpectRollback()
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), missing), store.ErrUserNotFound)
}
