package drafting

import (
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

// Advance move o passo corrente para frente após validar os requisitos de
// todos os passos anteriores ao destino. Dados de passos posteriores nunca
// são tocados
func (s *Service) Advance(userID int, step int) (*domain.CampaignDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	if step < domain.StepObjective || step > domain.StepReview {
		return nil, NewValidationError("step", "passo fora do intervalo do wizard")
	}

	if step <= draft.CurrentStep {
		return nil, NewValidationError("step", "avançar exige um passo posterior ao atual")
	}

	for prior := domain.StepObjective; prior < step; prior++ {
		if err := stepRequirements(draft, prior); err != nil {
			return nil, err
		}
	}

	draft.CurrentStep = step
	if err := s.persist(userID, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// Rewind volta para um passo anterior (a ação "Editar" da revisão); somente
// current_step muda, nenhum dado de passo posterior é limpo
func (s *Service) Rewind(userID int, step int) (*domain.CampaignDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	if step < domain.StepObjective || step > domain.StepReview {
		return nil, NewValidationError("step", "passo fora do intervalo do wizard")
	}

	if step >= draft.CurrentStep {
		return nil, NewValidationError("step", "voltar exige um passo anterior ao atual")
	}

	draft.CurrentStep = step
	if err := s.persist(userID, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// stepRequirements valida os campos obrigatórios de um passo antes de
// permitir a navegação para além dele
func stepRequirements(draft *domain.CampaignDraft, step int) error {
	switch step {
	case domain.StepObjective:
		if !draft.Objective.Valid() {
			return NewValidationError("objective", "escolha um objetivo de campanha antes de avançar")
		}
	case domain.StepAudience:
		if len(draft.Audience.ValidLocations()) == 0 {
			return NewValidationError("audience.locations", "adicione pelo menos uma localização com país antes de avançar")
		}
	case domain.StepBudget:
		if err := validateBudget(&draft.Budget); err != nil {
			return err
		}
		if draft.Budget.Currency == "" {
			return NewValidationError("budget.currency", "informe a moeda do orçamento")
		}
	case domain.StepPlacement:
		if !draft.Placements.Automatic && len(draft.Placements.Manual) == 0 {
			return NewValidationError("placements", "escolha posicionamentos manuais ou use automático")
		}
	case domain.StepCreative:
		if draft.Creative.Headline == "" {
			return NewValidationError("creative.headline", "informe o título do anúncio")
		}
		if draft.Creative.PrimaryText == "" {
			return NewValidationError("creative.primary_text", "informe o texto principal do anúncio")
		}
		if draft.Creative.URL == "" {
			return NewValidationError("creative.url", "informe a URL de destino do anúncio")
		}
	}

	return nil
}
