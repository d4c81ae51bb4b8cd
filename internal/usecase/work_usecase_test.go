package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase/interfaces"
	mock_interfaces "construtora_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const (
	testWorkID   = "11111111-1111-4111-8111-111111111111"
	testClientID = "22222222-2222-4222-8222-222222222222"
	testPresetID = "33333333-3333-4333-8333-333333333333"
	testItemID   = "44444444-4444-4444-8444-444444444444"
)

func strPtr(s string) *string { return &s }

func TestWorkUseCase_Create(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		var stored entities.Work
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) {
				stored = w
				return w, nil
			})

		created, err := uc.Create(context.Background(), WorkWrite{Title: strPtr("Reforma")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Status != entities.WorkStatusDefault || created.Version != 1 {
			t.Fatalf("unexpected defaults: %+v", created)
		}
		if stored.Checklist == nil || len(stored.Checklist) != 0 {
			t.Fatalf("expected empty checklist, got %+v", stored.Checklist)
		}
		if stored.Budget.Kind != entities.BudgetKindNone {
			t.Fatalf("expected no budget, got %+v", stored.Budget)
		}
	})

	t.Run("initial checklist items get ids and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) { return w, nil })

		created, err := uc.Create(context.Background(), WorkWrite{
			Checklist: []entities.ChecklistItem{
				{Title: "  Fundação  ", Done: true},
				{Title: "Alvenaria"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(created.Checklist) != 2 {
			t.Fatalf("expected 2 items, got %d", len(created.Checklist))
		}
		first := created.Checklist[0]
		if first.ID == "" || first.Title != "Fundação" || !first.Done || first.CreatedAt.IsZero() {
			t.Fatalf("unexpected item: %+v", first)
		}
	})

	t.Run("blank checklist title rejected", func(t *testing.T) {
		uc := NewWorkUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), WorkWrite{
			Checklist: []entities.ChecklistItem{{Title: "   "}},
		})
		if !errors.Is(err, ErrInvalidChecklistTitle) {
			t.Fatalf("expected ErrInvalidChecklistTitle, got %v", err)
		}
	})

	t.Run("manual budget wins over preset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) { return w, nil })

		created, err := uc.Create(context.Background(), WorkWrite{
			BudgetPresetID: strPtr(testPresetID),
			BudgetManual: &entities.BudgetManual{
				Labor: []entities.ManualLabor{{Name: "Pedreiro", Price: 100}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Budget.Kind != entities.BudgetKindManual || created.Budget.PresetID != "" {
			t.Fatalf("expected manual budget, got %+v", created.Budget)
		}
		if created.Budget.Manual.Labor[0].ID == "" {
			t.Fatalf("expected labor line to get an id")
		}
	})

	t.Run("malformed client id rejected", func(t *testing.T) {
		uc := NewWorkUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), WorkWrite{ClientID: strPtr("not-a-uuid")})
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("linking a client captures its snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewWorkUseCase(repo, clientRepo, nil)

		clientRepo.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{
			ID: testClientID, Name: "Maria", Email: "maria@example.com",
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) { return w, nil })

		created, err := uc.Create(context.Background(), WorkWrite{ClientID: strPtr(testClientID)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ClientSnapshot == nil || created.ClientSnapshot.Name != "Maria" {
			t.Fatalf("expected snapshot from client, got %+v", created.ClientSnapshot)
		}
	})
}

func TestWorkUseCase_Update(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		uc := NewWorkUseCase(nil, nil, nil)
		_, err := uc.Update(context.Background(), "nope", WorkWrite{})
		if !errors.Is(err, ErrInvalidWorkID) {
			t.Fatalf("expected ErrInvalidWorkID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(entities.Work{}, nil)

		_, err := uc.Update(context.Background(), testWorkID, WorkWrite{})
		if !errors.Is(err, ErrWorkNotFound) {
			t.Fatalf("expected ErrWorkNotFound, got %v", err)
		}
	})

	t.Run("retries on version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		stored := entities.Work{ID: testWorkID, Status: "Em andamento", Version: 3}
		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(stored, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Work{}, interfaces.ErrVersionConflict),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, w entities.Work) (entities.Work, error) { return w, nil }),
		)

		updated, err := uc.Update(context.Background(), testWorkID, WorkWrite{Title: strPtr("Nova obra")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "Nova obra" {
			t.Fatalf("unexpected title: %s", updated.Title)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		stored := entities.Work{ID: testWorkID, Version: 1}
		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(stored, nil).Times(workWriteAttempts)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Work{}, interfaces.ErrVersionConflict).Times(workWriteAttempts)

		_, err := uc.Update(context.Background(), testWorkID, WorkWrite{})
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestWorkUseCase_Checklist(t *testing.T) {
	storedWork := func() entities.Work {
		return entities.Work{
			ID:      testWorkID,
			Version: 1,
			Checklist: []entities.ChecklistItem{
				{ID: testItemID, Title: "Fundação", Done: false},
			},
		}
	}

	t.Run("add appends an open item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(storedWork(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) { return w, nil })

		updated, err := uc.AddChecklistItem(context.Background(), testWorkID, "  Acabamento ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Checklist) != 2 {
			t.Fatalf("expected 2 items, got %d", len(updated.Checklist))
		}
		added := updated.Checklist[1]
		if added.ID == "" || added.Title != "Acabamento" || added.Done {
			t.Fatalf("unexpected added item: %+v", added)
		}
	})

	t.Run("add rejects blank title", func(t *testing.T) {
		uc := NewWorkUseCase(nil, nil, nil)
		_, err := uc.AddChecklistItem(context.Background(), testWorkID, "   ")
		if !errors.Is(err, ErrInvalidChecklistTitle) {
			t.Fatalf("expected ErrInvalidChecklistTitle, got %v", err)
		}
	})

	t.Run("toggle flips done", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(storedWork(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) { return w, nil })

		updated, err := uc.ToggleChecklistItem(context.Background(), testWorkID, testItemID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Checklist[0].Done {
			t.Fatalf("expected item toggled to done")
		}
	})

	t.Run("toggle missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		other := "55555555-5555-4555-8555-555555555555"
		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(storedWork(), nil)

		_, err := uc.ToggleChecklistItem(context.Background(), testWorkID, other)
		if !errors.Is(err, ErrChecklistItemNotFound) {
			t.Fatalf("expected ErrChecklistItemNotFound, got %v", err)
		}
	})

	t.Run("toggle malformed item id", func(t *testing.T) {
		uc := NewWorkUseCase(nil, nil, nil)
		_, err := uc.ToggleChecklistItem(context.Background(), testWorkID, "nope")
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("remove missing item is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		other := "55555555-5555-4555-8555-555555555555"
		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(storedWork(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) { return w, nil })

		updated, err := uc.RemoveChecklistItem(context.Background(), testWorkID, other)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Checklist) != 1 {
			t.Fatalf("expected checklist untouched, got %d items", len(updated.Checklist))
		}
	})

	t.Run("remove deletes the item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(storedWork(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.Work) (entities.Work, error) { return w, nil })

		updated, err := uc.RemoveChecklistItem(context.Background(), testWorkID, testItemID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Checklist) != 0 {
			t.Fatalf("expected empty checklist, got %d items", len(updated.Checklist))
		}
	})
}

func TestWorkUseCase_List(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	works := []entities.Work{
		{ID: "a", Title: "Reforma cozinha", Status: "Em andamento", CreatedAt: base},
		{ID: "b", Title: "Telhado", Status: "Concluída", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "c", ResponsibleName: "Carlos", Status: "Em andamento", CreatedAt: base.Add(time.Hour),
			ClientSnapshot: &entities.ClientSnapshot{Name: "Maria"}},
	}

	newUC := func(t *testing.T) (*WorkUseCase, *mock_interfaces.MockIWorkRepository) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		return NewWorkUseCase(repo, nil, nil), repo
	}

	t.Run("sorts newest first with defaults", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(works, nil)

		page, err := uc.List(context.Background(), WorkListQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Page != 1 || page.Limit != listDefaultLimit || page.Total != 3 {
			t.Fatalf("unexpected envelope: %+v", page)
		}
		if page.Works[0].ID != "b" || page.Works[1].ID != "c" || page.Works[2].ID != "a" {
			t.Fatalf("unexpected order: %+v", page.Works)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(works, nil)

		page, err := uc.List(context.Background(), WorkListQuery{Status: "Concluída"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 1 || page.Works[0].ID != "b" {
			t.Fatalf("unexpected result: %+v", page.Works)
		}
	})

	t.Run("search matches snapshot name case-insensitively", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(works, nil)

		page, err := uc.List(context.Background(), WorkListQuery{Search: "MARIA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 1 || page.Works[0].ID != "c" {
			t.Fatalf("unexpected result: %+v", page.Works)
		}
	})

	t.Run("paginates and keeps total", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(works, nil)

		page, err := uc.List(context.Background(), WorkListQuery{Page: 2, Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 3 || len(page.Works) != 1 || page.Works[0].ID != "c" {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("clamps the limit", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		page, err := uc.List(context.Background(), WorkListQuery{Limit: 5000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Limit != listMaxLimit {
			t.Fatalf("expected limit %d, got %d", listMaxLimit, page.Limit)
		}
	})

	t.Run("negative limit clamps to one", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(works, nil)

		page, err := uc.List(context.Background(), WorkListQuery{Limit: -5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Limit != 1 || len(page.Works) != 1 {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		uc, repo := newUC(t)
		repo.EXPECT().ListAll(gomock.Any()).Return(works, nil)

		page, err := uc.List(context.Background(), WorkListQuery{Page: 9, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 3 || len(page.Works) != 0 {
			t.Fatalf("unexpected page: %+v", page)
		}
	})
}

func TestWorkUseCase_GetByID(t *testing.T) {
	t.Run("resolves client and preset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		presetRepo := mock_interfaces.NewMockIBudgetPresetRepository(ctrl)
		uc := NewWorkUseCase(repo, clientRepo, presetRepo)

		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(entities.Work{
			ID:       testWorkID,
			ClientID: testClientID,
			Budget:   entities.PresetBudget(testPresetID),
		}, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), testClientID).Return(entities.Client{ID: testClientID, Name: "Maria"}, nil)
		presetRepo.EXPECT().GetByID(gomock.Any(), testPresetID).Return(entities.BudgetPreset{ID: testPresetID, Name: "Básico"}, nil)

		detail, err := uc.GetByID(context.Background(), testWorkID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Client == nil || detail.Client.Name != "Maria" {
			t.Fatalf("expected resolved client, got %+v", detail.Client)
		}
		if detail.Preset == nil || detail.Preset.Name != "Básico" {
			t.Fatalf("expected resolved preset, got %+v", detail.Preset)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(entities.Work{}, nil)

		_, err := uc.GetByID(context.Background(), testWorkID)
		if !errors.Is(err, ErrWorkNotFound) {
			t.Fatalf("expected ErrWorkNotFound, got %v", err)
		}
	})
}

func TestWorkUseCase_Delete(t *testing.T) {
	t.Run("missing work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), testWorkID).Return(false, nil)

		if err := uc.Delete(context.Background(), testWorkID); !errors.Is(err, ErrWorkNotFound) {
			t.Fatalf("expected ErrWorkNotFound, got %v", err)
		}
	})
}

func TestWorkUseCase_Public(t *testing.T) {
	t.Run("list by client sorted newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByClientID(gomock.Any(), testClientID).Return([]entities.Work{
			{ID: "old", CreatedAt: base},
			{ID: "new", CreatedAt: base.Add(time.Hour)},
		}, nil)

		works, err := uc.PublicListByClient(context.Background(), testClientID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if works[0].ID != "new" || works[1].ID != "old" {
			t.Fatalf("unexpected order: %+v", works)
		}
	})

	t.Run("detail resolves preset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		presetRepo := mock_interfaces.NewMockIBudgetPresetRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, presetRepo)

		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(entities.Work{
			ID:     testWorkID,
			Budget: entities.PresetBudget(testPresetID),
		}, nil)
		presetRepo.EXPECT().GetByID(gomock.Any(), testPresetID).Return(entities.BudgetPreset{ID: testPresetID, Name: "Básico"}, nil)

		detail, err := uc.PublicDetail(context.Background(), testWorkID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Preset == nil || detail.Preset.Name != "Básico" {
			t.Fatalf("expected resolved preset, got %+v", detail.Preset)
		}
	})

	t.Run("detail of missing work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkRepository(ctrl)
		uc := NewWorkUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), testWorkID).Return(entities.Work{}, nil)

		_, err := uc.PublicDetail(context.Background(), testWorkID)
		if !errors.Is(err, ErrWorkNotFound) {
			t.Fatalf("expected ErrWorkNotFound, got %v", err)
		}
	})
}
