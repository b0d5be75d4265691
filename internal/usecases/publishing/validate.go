package publishing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
)

// validateDraft é a barreira local antes de qualquer requisição: um rascunho
// incompleto falha aqui com o campo exato, sem tocar a rede
func validateDraft(draft *domain.CampaignDraft) error {
	if draft.WorkspaceID == "" {
		return drafting.NewValidationError("workspace_id", "selecione um workspace antes de publicar")
	}
	if !draft.Objective.Valid() {
		return drafting.NewValidationError("objective", "objetivo de campanha inválido")
	}
	if len(draft.Audience.ValidLocations()) == 0 {
		return drafting.NewValidationError("audience.locations", "a campanha precisa de ao menos uma localização")
	}
	if draft.Budget.Amount <= 0 {
		return drafting.NewValidationError("budget.amount", "o orçamento deve ser maior que zero")
	}
	if strings.TrimSpace(draft.Creative.Headline) == "" {
		return drafting.NewValidationError("creative.headline", "o título do anúncio é obrigatório")
	}
	if strings.TrimSpace(draft.Creative.PrimaryText) == "" {
		return drafting.NewValidationError("creative.primary_text", "o texto principal do anúncio é obrigatório")
	}
	if strings.TrimSpace(draft.Creative.URL) == "" {
		return drafting.NewValidationError("creative.url", "a URL de destino é obrigatória")
	}
	if !draft.Placements.Automatic && len(draft.Placements.Manual) == 0 {
		return drafting.NewValidationError("placements", "escolha posicionamentos manuais ou volte ao automático")
	}
	return nil
}

// buildPayload monta a requisição de publicação a partir do rascunho
// validado, incluindo todas as localizações válidas e a mídia resolvida
func (s *Service) buildPayload(ctx context.Context, userID int, draft *domain.CampaignDraft) (*domain.PublishPayload, error) {
	campaignName := campaignName(draft)

	payload := &domain.PublishPayload{
		CampaignName: campaignName,
		AdsetName:    campaignName + " - Adset",
		AdName:       campaignName + " - Ad",
		Objective:    draft.Objective,
		Budget:       draft.Budget,
		Schedule: domain.PublishSchedule{
			StartDate: draft.Budget.StartDate,
			EndDate:   draft.Budget.EndDate,
		},
		Targeting: domain.PublishTargeting{
			Locations: draft.Audience.ValidLocations(),
			Age:       draft.Audience.Age,
			Gender:    draft.Audience.Gender,
			Interests: draft.Audience.Interests,
		},
		Placements: draft.Placements,
		Creative: domain.PublishCreative{
			Headline:    draft.Creative.Headline,
			PrimaryText: draft.Creative.PrimaryText,
			Description: draft.Creative.Description,
			CTA:         draft.Creative.CTA,
			URL:         draft.Creative.URL,
		},
		WorkspaceID: draft.WorkspaceID,
		UserID:      userID,
	}

	if err := s.attachMedia(ctx, payload, draft); err != nil {
		return nil, err
	}

	return payload, nil
}

// campaignName deriva um nome legível do criativo; rascunhos sem nome usam a
// data corrente
func campaignName(draft *domain.CampaignDraft) string {
	if draft.Creative.Name != "" {
		return draft.Creative.Name
	}
	if draft.Creative.Headline != "" {
		return draft.Creative.Headline
	}
	return fmt.Sprintf("Campanha %s", time.Now().Format("02/01/2006"))
}
