package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"construtora_api/internal/domain/entities"
	mock_interfaces "construtora_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("blank name rejected", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, _, err := uc.Create(context.Background(), "   ", "", "", "", "")
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("generates credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Return(entities.Client{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil })

		client, tempPassword, err := uc.Create(context.Background(), "João da Silva", "JOAO@Example.com", " 119999 ", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.Status != entities.ClientStatusAtivo {
			t.Fatalf("expected default status Ativo, got %s", client.Status)
		}
		if client.Email != "joao@example.com" || client.Phone != "119999" {
			t.Fatalf("unexpected normalization: %+v", client)
		}
		if ok, _ := regexp.MatchString(`^joao\.da\.silva\.\d{3}$`, client.Username); !ok {
			t.Fatalf("unexpected username: %s", client.Username)
		}
		if len(tempPassword) != tempPasswordLength {
			t.Fatalf("unexpected temp password length: %d", len(tempPassword))
		}
		if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(tempPassword)); err != nil {
			t.Fatalf("password hash does not verify: %v", err)
		}
	})

	t.Run("gives up when no unique username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).
			Return(entities.Client{ID: "taken"}, nil).Times(usernameAttempts)

		_, _, err := uc.Create(context.Background(), "Maria", "", "", "", "")
		if !errors.Is(err, ErrUsernameGeneration) {
			t.Fatalf("expected ErrUsernameGeneration, got %v", err)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("username taken by another client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID, Username: "maria.123"}, nil)
		repo.EXPECT().GetByUsername(gomock.Any(), "joao.456").Return(entities.Client{ID: "other"}, nil)

		_, err := uc.Update(context.Background(), testClientID, ClientWrite{Username: strPtr("joao.456")})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("keeping own username skips the check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID, Username: "maria.123"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil })

		updated, err := uc.Update(context.Background(), testClientID, ClientWrite{
			Username: strPtr("maria.123"),
			Name:     strPtr("Maria Souza"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Maria Souza" || updated.Username != "maria.123" {
			t.Fatalf("unexpected client: %+v", updated)
		}
	})

	t.Run("unknown status is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID, Status: entities.ClientStatusAtivo}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil })

		updated, err := uc.Update(context.Background(), testClientID, ClientWrite{Status: strPtr("Pausado")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ClientStatusAtivo {
			t.Fatalf("expected status untouched, got %s", updated.Status)
		}
	})
}

func TestClientUseCase_ResetPassword(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{}, nil)

		_, _, err := uc.ResetPassword(context.Background(), testClientID)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("replaces the hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID, PasswordHash: "old"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil })

		updated, tempPassword, err := uc.ResetPassword(context.Background(), testClientID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(tempPassword)); err != nil {
			t.Fatalf("new password does not verify: %v", err)
		}
	})
}

func TestSlugifyBase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"João da Silva", "joao.da.silva"},
		{"  Construções & Reformas LTDA  ", "construcoes.reformas"},
		{"ÁÉÍÓÚ âêô ç", "aeiou.aeo.c"},
		{"!!!", "cliente"},
	}
	for _, tc := range cases {
		if got := slugifyBase(tc.in); got != tc.want {
			t.Fatalf("slugifyBase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := slugifyBase("aaaaaaaaaabbbbbbbbbbcccccccccc"); len(got) > 20 {
		t.Fatalf("slug not capped: %q", got)
	}
}
