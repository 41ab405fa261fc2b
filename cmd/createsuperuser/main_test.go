package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wodmeet/wodmeet/internal/domain"
	"github.com/wodmeet/wodmeet/internal/store"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, username, password string, superuser bool) (*domain.User, error) {
	args := m.Called(ctx, username, password, superuser)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	panic("not used")
}

func (m *mockUserService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	panic("not used")
}

func (m *mockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	panic("not used")
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	panic("not used")
}

func TestPrompter_ConfirmedPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "matching", input: "Kettlebell24\nKettlebell24\n", want: "Kettlebell24"},
		{name: "crlf and no trailing newline", input: "Kettlebell24\r\nKettlebell24", want: "Kettlebell24"},
		{name: "mismatch", input: "Kettlebell24\nKettlebell25\n", wantErr: errPasswordMismatch},
		{name: "missing confirmation", input: "Kettlebell24\n", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newPrompter(strings.NewReader(tt.input), &out)

			got, err := p.confirmedPassword()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Password (again): ")
		})
	}
}

func TestCreateSuperuser(t *testing.T) {
	users := &mockUserService{}
	user, err := domain.NewUser("admin", true)
	require.NoError(t, err)
	users.On("CreateUser", mock.Anything, "admin", "Kettlebell24", true).Return(user, nil)
	users.On("CreateUser", mock.Anything, "taken", "Kettlebell24", true).Return(nil, store.ErrUsernameExists)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.NoError(t, createSuperuser(context.Background(), users, "admin", "Kettlebell24", log))
	assert.ErrorIs(t, createSuperuser(context.Background(), users, "taken", "Kettlebell24", log), store.ErrUsernameExists)
	users.AssertExpectations(t)
}
