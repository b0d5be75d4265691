package drafting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/repository/mocks"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

const testUserID = 42

// newTestService monta o serviço com um repositório ativo que guarda o
// envelope em memória, simulando o ciclo de persistência real
func newTestService(t *testing.T) (*Service, *mocks.MockSavedDraftRepository) {
	ctrl := gomock.NewController(t)

	activeRepo := mocks.NewMockActiveDraftRepository(ctrl)
	savedRepo := mocks.NewMockSavedDraftRepository(ctrl)

	var stored *domain.DraftEnvelope
	activeRepo.EXPECT().Get(gomock.Any()).DoAndReturn(func(int) (*domain.DraftEnvelope, error) {
		return stored, nil
	}).AnyTimes()
	activeRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ int, envelope *domain.DraftEnvelope) error {
		stored = envelope
		return nil
	}).AnyTimes()
	activeRepo.EXPECT().Delete(gomock.Any()).DoAndReturn(func(int) error {
		stored = nil
		return nil
	}).AnyTimes()

	cfg := &config.Config{
		Wizard: config.Wizard{MaxLocations: 10},
	}

	return &Service{
		cfg:        cfg,
		activeRepo: activeRepo,
		savedRepo:  savedRepo,
	}, savedRepo
}

func objectivePtr(o domain.Objective) *domain.Objective { return &o }
func stringPtr(s string) *string                        { return &s }

func TestGetCreatesDefaultDraft(t *testing.T) {
	service, _ := newTestService(t)

	draft, err := service.Get(testUserID)
	require.NoError(t, err)

	assert.Equal(t, domain.StepObjective, draft.CurrentStep)
	assert.Equal(t, domain.AgeRange{Min: 18, Max: 65}, draft.Audience.Age)
	assert.Equal(t, domain.GenderAll, draft.Audience.Gender)
	assert.Equal(t, domain.BudgetTypeDaily, draft.Budget.Type)
	assert.Equal(t, "USD", draft.Budget.Currency)
	assert.True(t, draft.Placements.Automatic)
	assert.Empty(t, draft.Audience.Locations)
}

func TestSetRoundTripPreservesOtherKeys(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Set(testUserID, &domain.DraftPatch{
		Objective: objectivePtr(domain.ObjectiveTraffic),
	})
	require.NoError(t, err)

	_, err = service.Set(testUserID, &domain.DraftPatch{
		Audience: &domain.AudiencePatch{
			Locations: &[]domain.Location{{Country: "Brazil"}},
		},
	})
	require.NoError(t, err)

	// O merge por chave de topo não toca as chaves ausentes do patch
	draft, err := service.Get(testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectiveTraffic, draft.Objective)
	require.Len(t, draft.Audience.Locations, 1)
	assert.Equal(t, "Brazil", draft.Audience.Locations[0].Country)
	assert.Equal(t, domain.GenderAll, draft.Audience.Gender)
}

func TestSetRejectsInvalidObjective(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Set(testUserID, &domain.DraftPatch{
		Objective: objectivePtr(domain.Objective("VIRALITY")),
	})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSetRejectsAgeOutsideBounds(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name string
		age  domain.AgeRange
	}{
		{name: "mínimo abaixo de 18", age: domain.AgeRange{Min: 16, Max: 30}},
		{name: "máximo acima de 65", age: domain.AgeRange{Min: 20, Max: 70}},
		{name: "mínimo maior que máximo", age: domain.AgeRange{Min: 40, Max: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := tt.age
			_, err := service.Set(testUserID, &domain.DraftPatch{
				Audience: &domain.AudiencePatch{Age: &age},
			})
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestSetRejectsTooManyLocations(t *testing.T) {
	service, _ := newTestService(t)

	locations := make([]domain.Location, 11)
	for i := range locations {
		locations[i] = domain.Location{Country: "Brazil"}
	}

	_, err := service.Set(testUserID, &domain.DraftPatch{
		Audience: &domain.AudiencePatch{Locations: &locations},
	})

	assert.True(t, IsValidationError(err))
}

func TestSetCreativeImageAndVideoAreExclusive(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Set(testUserID, &domain.DraftPatch{
		Creative: &domain.Creative{
			Headline: "Oferta",
			ImageURL: "https://cdn.example.com/a.png",
			VideoURL: "https://cdn.example.com/a.mp4",
		},
	})
	assert.True(t, IsValidationError(err))

	// Definir um vídeo depois de uma imagem limpa a imagem
	_, err = service.Set(testUserID, &domain.DraftPatch{
		Creative: &domain.Creative{Headline: "Oferta", ImageURL: "https://cdn.example.com/a.png"},
	})
	require.NoError(t, err)

	draft, err := service.Set(testUserID, &domain.DraftPatch{
		Creative: &domain.Creative{Headline: "Oferta", VideoURL: "https://cdn.example.com/a.mp4"},
	})
	require.NoError(t, err)
	assert.Empty(t, draft.Creative.ImageURL)
	assert.Equal(t, "https://cdn.example.com/a.mp4", draft.Creative.VideoURL)
}

func TestAdvanceValidatesPriorSteps(t *testing.T) {
	service, _ := newTestService(t)

	// Sem objetivo escolhido o avanço para o passo 2 é bloqueado
	_, err := service.Advance(testUserID, domain.StepAudience)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = service.Set(testUserID, &domain.DraftPatch{
		Objective: objectivePtr(domain.ObjectiveReach),
	})
	require.NoError(t, err)

	draft, err := service.Advance(testUserID, domain.StepAudience)
	require.NoError(t, err)
	assert.Equal(t, domain.StepAudience, draft.CurrentStep)
}

func TestAdvanceRejectsBackwardsAndOutOfRange(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Set(testUserID, &domain.DraftPatch{
		Objective: objectivePtr(domain.ObjectiveReach),
	})
	require.NoError(t, err)

	_, err = service.Advance(testUserID, domain.StepAudience)
	require.NoError(t, err)

	_, err = service.Advance(testUserID, domain.StepObjective)
	assert.True(t, IsValidationError(err))

	_, err = service.Advance(testUserID, 7)
	assert.True(t, IsValidationError(err))
}

func TestRewindPreservesLaterStepData(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Set(testUserID, &domain.DraftPatch{
		Objective: objectivePtr(domain.ObjectiveConversions),
		Audience: &domain.AudiencePatch{
			Locations: &[]domain.Location{{Country: "Brazil"}},
		},
		Budget: &domain.Budget{Amount: 50, Currency: "BRL", Type: domain.BudgetTypeDaily},
		Creative: &domain.Creative{
			Headline:    "Oferta de verão",
			PrimaryText: "Aproveite",
			URL:         "https://example.com",
		},
	})
	require.NoError(t, err)

	_, err = service.Advance(testUserID, domain.StepReview)
	require.NoError(t, err)

	// Voltar para a audiência não limpa orçamento nem criativo
	draft, err := service.Rewind(testUserID, domain.StepAudience)
	require.NoError(t, err)

	assert.Equal(t, domain.StepAudience, draft.CurrentStep)
	assert.Equal(t, 50.0, draft.Budget.Amount)
	assert.Equal(t, "Oferta de verão", draft.Creative.Headline)
	assert.Equal(t, "Aproveite", draft.Creative.PrimaryText)
}

func TestRewindRequiresEarlierStep(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Rewind(testUserID, domain.StepReview)
	assert.True(t, IsValidationError(err))
}

func TestResetDiscardsDraft(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Set(testUserID, &domain.DraftPatch{
		Objective: objectivePtr(domain.ObjectiveReach),
	})
	require.NoError(t, err)

	require.NoError(t, service.Reset(testUserID))

	draft, err := service.Get(testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.Objective(""), draft.Objective)
	assert.Equal(t, domain.StepObjective, draft.CurrentStep)
}

func TestSetWorkspaceAndSelectedImages(t *testing.T) {
	service, _ := newTestService(t)

	images := []string{"https://cdn.example.com/1.png"}
	draft, err := service.Set(testUserID, &domain.DraftPatch{
		WorkspaceID:    stringPtr("ws-1"),
		SelectedImages: &images,
	})
	require.NoError(t, err)

	assert.Equal(t, "ws-1", draft.WorkspaceID)
	assert.Equal(t, images, draft.SelectedImages)
}
