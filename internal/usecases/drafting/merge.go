package drafting

import (
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

// applyPatch faz o merge raso por chave de topo; a audiência recebe merge
// profundo, exceto quando um array completo de locations é fornecido, que
// substitui a lista inteira
func applyPatch(draft *domain.CampaignDraft, patch *domain.DraftPatch, maxLocations int) error {
	if patch == nil {
		return nil
	}

	if patch.Objective != nil {
		if !patch.Objective.Valid() {
			return NewValidationError("objective", "objetivo de campanha inválido")
		}
		draft.Objective = *patch.Objective
	}

	if patch.Audience != nil {
		if err := applyAudiencePatch(&draft.Audience, patch.Audience, maxLocations); err != nil {
			return err
		}
	}

	if patch.Budget != nil {
		if err := validateBudget(patch.Budget); err != nil {
			return err
		}
		draft.Budget = *patch.Budget
	}

	if patch.Placements != nil {
		placements := *patch.Placements
		if placements.Manual == nil {
			placements.Manual = []string{}
		}
		draft.Placements = placements
	}

	if patch.Creative != nil {
		if err := applyCreativePatch(&draft.Creative, patch.Creative); err != nil {
			return err
		}
	}

	if patch.SelectedImages != nil {
		draft.SelectedImages = *patch.SelectedImages
	}

	if patch.WorkspaceID != nil {
		draft.WorkspaceID = *patch.WorkspaceID
	}

	return nil
}

func applyAudiencePatch(audience *domain.Audience, patch *domain.AudiencePatch, maxLocations int) error {
	if patch.Locations != nil {
		locations := *patch.Locations
		if len(locations) > maxLocations {
			return NewValidationError("audience.locations", "número máximo de localizações excedido")
		}
		audience.Locations = locations
	}

	if patch.Age != nil {
		age := *patch.Age
		if age.Min < domain.MinTargetAge || age.Max > domain.MaxTargetAge || age.Min > age.Max {
			return NewValidationError("audience.age", "faixa etária deve estar entre 18 e 65, com mínimo menor ou igual ao máximo")
		}
		audience.Age = age
	}

	if patch.Gender != nil {
		gender := *patch.Gender
		if gender != domain.GenderAll && gender != domain.GenderMale && gender != domain.GenderFemale {
			return NewValidationError("audience.gender", "gênero deve ser all, male ou female")
		}
		audience.Gender = gender
	}

	if patch.Interests != nil {
		audience.Interests = *patch.Interests
	}

	if patch.Mode != nil {
		mode := *patch.Mode
		if mode != domain.AudienceModeManual && mode != domain.AudienceModeAI {
			return NewValidationError("audience.mode", "modo de audiência deve ser MANUAL ou AI")
		}
		audience.Mode = mode
	}

	if patch.Applied != nil {
		audience.Applied = *patch.Applied
	}

	return nil
}

func validateBudget(budget *domain.Budget) error {
	if budget.Amount <= 0 {
		return NewValidationError("budget.amount", "valor do orçamento deve ser positivo")
	}

	if budget.Type != domain.BudgetTypeDaily && budget.Type != domain.BudgetTypeLifetime {
		return NewValidationError("budget.type", "tipo de orçamento deve ser daily ou lifetime")
	}

	if budget.StartDate != nil && budget.EndDate != nil && budget.EndDate.Before(*budget.StartDate) {
		return NewValidationError("budget.end_date", "data final deve ser maior ou igual à data inicial")
	}

	return nil
}

// applyCreativePatch mantém o invariante de mídia única: exatamente um tipo
// de mídia (imagem ou vídeo) é autoritativo por rascunho; definir um limpa o
// outro
func applyCreativePatch(creative *domain.Creative, patch *domain.Creative) error {
	patched := *patch

	if patched.HasImage() && patched.HasVideo() {
		return NewValidationError("creative", "o criativo deve usar imagem ou vídeo, não ambos")
	}

	if patched.HasImage() {
		patched.VideoURL = ""
		patched.VideoID = ""
	} else if patched.HasVideo() {
		patched.ImageURL = ""
		patched.ImageID = ""
	}

	*creative = patched
	return nil
}
