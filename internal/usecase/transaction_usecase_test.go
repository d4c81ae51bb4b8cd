package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"construtora_api/internal/domain/entities"
	mock_interfaces "construtora_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }

func TestTransactionUseCase_Create(t *testing.T) {
	t.Run("requires a valid kind", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		_, err := uc.Create(context.Background(), TransactionWrite{Amount: floatPtr(10)})
		if !errors.Is(err, ErrInvalidTransactionKind) {
			t.Fatalf("expected ErrInvalidTransactionKind, got %v", err)
		}
	})

	t.Run("requires an amount", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		_, err := uc.Create(context.Background(), TransactionWrite{Kind: strPtr("Entrada")})
		if !errors.Is(err, ErrInvalidTransactionAmount) {
			t.Fatalf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		_, err := uc.Create(context.Background(), TransactionWrite{Kind: strPtr("Saida"), Amount: floatPtr(-5)})
		if !errors.Is(err, ErrInvalidTransactionAmount) {
			t.Fatalf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})

	t.Run("malformed related work id", func(t *testing.T) {
		uc := NewTransactionUseCase(nil)
		_, err := uc.Create(context.Background(), TransactionWrite{
			Kind:          strPtr("Entrada"),
			Amount:        floatPtr(10),
			RelatedWorkID: strPtr("nope"),
		})
		if !errors.Is(err, ErrInvalidWorkID) {
			t.Fatalf("expected ErrInvalidWorkID, got %v", err)
		}
	})

	t.Run("defaults status to Pago", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })

		created, err := uc.Create(context.Background(), TransactionWrite{
			Kind:        strPtr("Entrada"),
			Amount:      floatPtr(1500),
			Description: strPtr("Sinal da obra"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Status != entities.TransactionStatusPago || created.Amount != 1500 {
			t.Fatalf("unexpected transaction: %+v", created)
		}
		if created.Date.IsZero() {
			t.Fatalf("expected date default")
		}
	})
}

func TestTransactionUseCase_Update(t *testing.T) {
	const txID = "66666666-6666-4666-8666-666666666666"

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), txID).Return(entities.Transaction{}, nil)

		_, err := uc.Update(context.Background(), txID, TransactionWrite{})
		if !errors.Is(err, ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("invalid status keeps current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewTransactionUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), txID).Return(entities.Transaction{
			ID: txID, Kind: entities.TransactionKindSaida, Status: entities.TransactionStatusPendente, Amount: 10,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) { return tx, nil })

		updated, err := uc.Update(context.Background(), txID, TransactionWrite{Status: strPtr("Estornado")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.TransactionStatusPendente {
			t.Fatalf("expected status untouched, got %s", updated.Status)
		}
	})
}

func TestTransactionUseCase_List(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 6, d, 10, 0, 0, 0, time.UTC) }
	transactions := []entities.Transaction{
		{ID: "a", Kind: entities.TransactionKindEntrada, Status: entities.TransactionStatusPago, Category: "Recebimento", Description: "Sinal", Date: day(1)},
		{ID: "b", Kind: entities.TransactionKindSaida, Status: entities.TransactionStatusPago, Category: "Material", Description: "Cimento", Date: day(3)},
		{ID: "c", Kind: entities.TransactionKindSaida, Status: entities.TransactionStatusPendente, Category: "Material", Description: "Areia", Date: day(5)},
	}

	newUC := func(t *testing.T) (*TransactionUseCase, *mock_interfaces.MockITransactionRepository) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		return NewTransactionUseCase(repo), repo
	}

	t.Run("sorts by date descending", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(transactions, nil)

		got, err := uc.List(context.Background(), TransactionListQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].ID != "c" || got[1].ID != "b" || got[2].ID != "a" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("filters by kind and status", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(transactions, nil)

		got, err := uc.List(context.Background(), TransactionListQuery{Kind: "Saida", Status: "Pago"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("unknown kind is ignored", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(transactions, nil)

		got, err := uc.List(context.Background(), TransactionListQuery{Kind: "Transferencia"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected all transactions, got %d", len(got))
		}
	})

	t.Run("date window is inclusive", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(transactions, nil)

		from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
		got, err := uc.List(context.Background(), TransactionListQuery{DateFrom: &from, DateTo: &to})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("search matches description", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(transactions, nil)

		got, err := uc.List(context.Background(), TransactionListQuery{Search: "cimento"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
