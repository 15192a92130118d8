package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mozuk/mozuk-backend/internal/domain"
	"github.com/mozuk/mozuk-backend/pkg/ctxutil"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return m.GenerateAccessTokenFunc(userID)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	return m.ValidateAccessTokenFunc(token)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	user := &domain.User{
		ID:           userID,
		Email:        "admin@example.com",
		PasswordHash: hashPassword(t, "secret-password"),
		Name:         "Admin",
	}

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "admin@example.com" {
				t.Errorf("email not normalized: got %q", email)
			}
			return user, nil
		},
	}
	jwt := &jwtManagerMock{
		GenerateAccessTokenFunc: func(id uuid.UUID) (string, error) {
			if id != userID {
				t.Errorf("token generated for wrong user: %s", id)
			}
			return "signed-token", nil
		},
	}

	svc := NewService(slog.Default(), users, jwt)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "  Admin@Example.COM ",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "signed-token" {
		t.Errorf("Token mismatch: got %q", result.Token)
	}
	if result.User.ID != userID {
		t.Errorf("User mismatch: got %s", result.User.ID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:           uuid.New(),
				Email:        email,
				PasswordHash: hashPassword(t, "correct"),
			}, nil
		},
	}
	svc := NewService(slog.Default(), users, &jwtManagerMock{})

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "wrong"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(slog.Default(), users, &jwtManagerMock{})

	// Unknown email must be indistinguishable from a wrong password.
	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &userRepoMock{}, &jwtManagerMock{})

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"empty email", LoginInput{Password: "x"}},
		{"empty password", LoginInput{Email: "a@b.c"}},
		{"both empty", LoginInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Login(context.Background(), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestMe_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			if id != userID {
				t.Errorf("GetByID called with wrong ID: %s", id)
			}
			return &domain.User{ID: userID, Email: "admin@example.com"}, nil
		},
	}
	svc := NewService(slog.Default(), users, &jwtManagerMock{})

	ctx := ctxutil.WithUserID(context.Background(), userID)
	user, err := svc.Me(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != userID {
		t.Errorf("ID mismatch: got %s", user.ID)
	}
}

func TestMe_NoUserInContext(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &userRepoMock{}, &jwtManagerMock{})

	_, err := svc.Me(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	jwt := &jwtManagerMock{
		ValidateAccessTokenFunc: func(token string) (uuid.UUID, error) {
			if token == "good" {
				return userID, nil
			}
			return uuid.Nil, errors.New("parse token: bad signature")
		},
	}
	svc := NewService(slog.Default(), &userRepoMock{}, jwt)

	got, err := svc.ValidateToken("good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Errorf("user ID mismatch: got %s", got)
	}

	_, err = svc.ValidateToken("bad")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
