package domain

import (
	"time"
)

// DraftRecord é um snapshot imutável de um CampaignDraft salvo pelo usuário.
// Retomar um rascunho reidrata o rascunho ativo a partir do snapshot sem
// mutá-lo; registros são independentes entre si
type DraftRecord struct {
	ID        string         `json:"id"`
	UserID    int            `json:"user_id"`
	Name      string         `json:"name"`
	Draft     *CampaignDraft `json:"draft"`
	CreatedAt time.Time      `json:"created_at"`
}

// DisplayName deriva o nome de exibição do snapshot: nome da campanha,
// senão o headline do criativo, senão a data de criação
func DraftDisplayName(draft *CampaignDraft, createdAt time.Time) string {
	if draft.Creative.Name != "" {
		return draft.Creative.Name
	}
	if draft.Creative.Headline != "" {
		return draft.Creative.Headline
	}
	return "Rascunho de " + createdAt.Format("02/01/2006 15:04")
}

// DraftEnvelope embrulha o rascunho ativo persistido com uma versão de
// esquema plana, sem migrações além do número
type DraftEnvelope struct {
	State   *CampaignDraft `json:"state"`
	Version int            `json:"version"`
}

// DraftEnvelopeVersion é a versão corrente do envelope persistido
const DraftEnvelopeVersion = 1
