package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/getawayapp/getaway-backend/internal/services"

	jwtpkg "github.com/getawayapp/getaway-backend/internal/jwt"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	userID := uuid.New()

	type mocks struct {
		reader  *services.MockUserReader
		writer  *services.MockUserWriter
		access  *services.MockTokenIssuer
		refresh *services.MockRefreshTokener
	}

	tests := []struct {
		name        string
		user        *models.UserDB
		password    string
		setup       func(m mocks)
		wantAccess  string
		wantRefresh string
		wantErr     error
	}{
		{
			name:     "success",
			user:     &models.UserDB{Email: "john@example.com", FName: "John"},
			password: "secret1",
			setup: func(m mocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(nil, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *models.UserDB) (uuid.UUID, error) {
						// hash must be set and must not be the clear password
						require.NotEmpty(t, u.PasswordHash)
						require.NotEqual(t, "secret1", u.PasswordHash)
						require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
						return userID, nil
					})
				m.access.EXPECT().Generate(gomock.Any(), userID).Return("access-token", nil)
				m.refresh.EXPECT().Generate(gomock.Any(), userID).Return("refresh-token", nil)
			},
			wantAccess:  "access-token",
			wantRefresh: "refresh-token",
		},
		{
			name:     "password too short",
			user:     &models.UserDB{Email: "john@example.com"},
			password: "12345",
			setup:    func(m mocks) {},
			wantErr:  services.ErrPasswordTooShort,
		},
		{
			name:     "email already exists",
			user:     &models.UserDB{Email: "taken@example.com"},
			password: "secret1",
			setup: func(m mocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
					Return(&models.UserDB{UserID: uuid.New(), Email: "taken@example.com"}, nil)
			},
			wantErr: services.ErrEmailExists,
		},
		{
			name:     "reader error",
			user:     &models.UserDB{Email: "john@example.com"},
			password: "secret1",
			setup: func(m mocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "john@example.com").
					Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				reader:  services.NewMockUserReader(ctrl),
				writer:  services.NewMockUserWriter(ctrl),
				access:  services.NewMockTokenIssuer(ctrl),
				refresh: services.NewMockRefreshTokener(ctrl),
			}
			tt.setup(m)

			svc := services.NewAuthService(m.reader, m.writer, m.access, m.refresh)
			access, refresh, err := svc.Register(context.Background(), tt.user, tt.password)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, access)
			assert.Equal(t, tt.wantRefresh, refresh)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	type mocks struct {
		reader  *services.MockUserReader
		writer  *services.MockUserWriter
		access  *services.MockTokenIssuer
		refresh *services.MockRefreshTokener
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(m mocks)
		wantErr  error
	}{
		{
			name:     "success",
			email:    "john@example.com",
			password: "secret1",
			setup: func(m mocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "john@example.com").
					Return(&models.UserDB{UserID: userID, Email: "john@example.com", PasswordHash: string(hash)}, nil)
				m.access.EXPECT().Generate(gomock.Any(), userID).Return("access-token", nil)
				m.refresh.EXPECT().Generate(gomock.Any(), userID).Return("refresh-token", nil)
			},
		},
		{
			name:     "user does not exist",
			email:    "ghost@example.com",
			password: "secret1",
			setup: func(m mocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name:     "incorrect password",
			email:    "john@example.com",
			password: "wrong-password",
			setup: func(m mocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "john@example.com").
					Return(&models.UserDB{UserID: userID, Email: "john@example.com", PasswordHash: string(hash)}, nil)
			},
			wantErr: services.ErrIncorrectPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				reader:  services.NewMockUserReader(ctrl),
				writer:  services.NewMockUserWriter(ctrl),
				access:  services.NewMockTokenIssuer(ctrl),
				refresh: services.NewMockRefreshTokener(ctrl),
			}
			tt.setup(m)

			svc := services.NewAuthService(m.reader, m.writer, m.access, m.refresh)
			access, refresh, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, access)
				assert.Empty(t, refresh)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access-token", access)
			assert.Equal(t, "refresh-token", refresh)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	userID := uuid.New()

	t.Run("success issues access token only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		access := services.NewMockTokenIssuer(ctrl)
		refresh := services.NewMockRefreshTokener(ctrl)

		refresh.EXPECT().GetClaims(gomock.Any(), "refresh-token").
			Return(&jwtpkg.Claims{UserID: userID}, nil)
		access.EXPECT().Generate(gomock.Any(), userID).Return("new-access-token", nil)

		svc := services.NewAuthService(reader, writer, access, refresh)
		token, err := svc.Refresh(context.Background(), "refresh-token")
		require.NoError(t, err)
		assert.Equal(t, "new-access-token", token)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)
		access := services.NewMockTokenIssuer(ctrl)
		refresh := services.NewMockRefreshTokener(ctrl)

		refresh.EXPECT().GetClaims(gomock.Any(), "bad-token").
			Return(nil, jwtpkg.ErrInvalidToken)

		svc := services.NewAuthService(reader, writer, access, refresh)
		token, err := svc.Refresh(context.Background(), "bad-token")
		require.ErrorIs(t, err, jwtpkg.ErrInvalidToken)
		assert.Empty(t, token)
	})

	t.Run("access secret token rejected as refresh token", func(t *testing.T) {
		// Tokens signed with the access secret must not pass refresh
		// verification. Exercised with real signers, not mocks.
		accessJWT, err := jwtpkg.New("access-secret", time.Hour)
		require.NoError(t, err)
		refreshJWT, err := jwtpkg.New("refresh-secret", time.Hour)
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reader := services.NewMockUserReader(ctrl)
		writer := services.NewMockUserWriter(ctrl)

		accessToken, err := accessJWT.Generate(context.Background(), userID)
		require.NoError(t, err)

		svc := services.NewAuthService(reader, writer, accessJWT, refreshJWT)
		token, err := svc.Refresh(context.Background(), accessToken)
		require.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestAuthService_GetUser(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := services.NewMockUserReader(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "john@example.com"}, nil)

		svc := services.NewAuthService(reader, nil, nil, nil)
		user, err := svc.GetUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "john@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := services.NewMockUserReader(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		svc := services.NewAuthService(reader, nil, nil, nil)
		user, err := svc.GetUser(context.Background(), userID)
		require.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Nil(t, user)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockUserWriter(ctrl)
	writer.EXPECT().
		UpdateProfile(gomock.Any(), userID, "John", "Doe", "1990-01-02", "Austin", "TX", "73301").
		Return(nil)

	svc := services.NewAuthService(nil, writer, nil, nil)
	err := svc.UpdateProfile(context.Background(), userID, "John", "Doe", "1990-01-02", "Austin", "TX", "73301")
	require.NoError(t, err)
}
