package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/estudia-app/estudia/internal/api"
	mock_api "github.com/estudia-app/estudia/internal/mocks/api"
)

func TestAuth_Login(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(client *mock_api.MockAuthAPI)

		wantError         bool
		wantAuthenticated bool
	}{
		{
			name: "successful login fetches the user",
			setupMocks: func(client *mock_api.MockAuthAPI) {
				client.EXPECT().Login(gomock.Any(), "student@example.com", "secret").Return(nil)
				client.EXPECT().Me(gomock.Any()).Return(api.User{ID: 1, Email: "student@example.com"}, nil)
			},
			wantAuthenticated: true,
		},
		{
			name: "rejected credentials",
			setupMocks: func(client *mock_api.MockAuthAPI) {
				client.EXPECT().
					Login(gomock.Any(), "student@example.com", "secret").
					Return(&api.Error{StatusCode: 401, Detail: "Incorrect username or password"})
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_api.NewMockAuthAPI(ctrl)
			tt.setupMocks(client)

			auth := NewAuth(client)
			gotErr := auth.Login(context.Background(), "student@example.com", "secret")

			if tt.wantError {
				require.Error(t, gotErr)
			} else {
				require.NoError(t, gotErr)
			}
			assert.Equal(t, tt.wantAuthenticated, auth.IsAuthenticated())
		})
	}
}

func TestAuth_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_api.NewMockAuthAPI(ctrl)
	auth := NewAuth(client)

	client.EXPECT().Me(gomock.Any()).Return(api.User{ID: 1, Name: "Ana"}, nil)
	require.NoError(t, auth.Check(context.Background()))
	user, ok := auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)

	// An expired session clears the user.
	client.EXPECT().Me(gomock.Any()).Return(api.User{}, &api.Error{StatusCode: 401})
	require.Error(t, auth.Check(context.Background()))
	assert.False(t, auth.IsAuthenticated())
}

func TestAuth_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_api.NewMockAuthAPI(ctrl)
	auth := NewAuth(client)

	client.EXPECT().Me(gomock.Any()).Return(api.User{ID: 1}, nil)
	require.NoError(t, auth.Check(context.Background()))

	// A failed logout keeps the local user: the session may still be alive.
	client.EXPECT().Logout(gomock.Any()).Return(errors.New("connection refused"))
	require.Error(t, auth.Logout(context.Background()))
	assert.True(t, auth.IsAuthenticated())

	client.EXPECT().Logout(gomock.Any()).Return(nil)
	require.NoError(t, auth.Logout(context.Background()))
	assert.False(t, auth.IsAuthenticated())
}

func TestAuth_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_api.NewMockAuthAPI(ctrl)
	auth := NewAuth(client)

	params := api.RegisterParams{Username: "new@example.com", Name: "New", Lastname: "Student", Password: "secret"}
	client.EXPECT().Register(gomock.Any(), params).Return(nil)
	client.EXPECT().Me(gomock.Any()).Return(api.User{ID: 2, Email: "new@example.com"}, nil)

	require.NoError(t, auth.Register(context.Background(), params))
	user, ok := auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, int64(2), user.ID)
}
