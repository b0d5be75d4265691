package domain

import "time"

// Estados da máquina de publicação
type PublishState string

const (
	PublishStateIdle       PublishState = "IDLE"
	PublishStateValidating PublishState = "VALIDATING"
	PublishStatePublishing PublishState = "PUBLISHING"
	PublishStateSuccess    PublishState = "SUCCESS"
	PublishStateFailed     PublishState = "FAILED"
)

// PublishCreative é o criativo como enviado ao backend: a mídia binária vai
// em base64; se a conversão falhar, apenas a URL de referência é enviada
type PublishCreative struct {
	Headline    string `json:"headline"`
	PrimaryText string `json:"primary_text"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
	URL         string `json:"url"`
	MediaBase64 string `json:"media_base64,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	MediaURL    string `json:"media_url,omitempty"`
}

type PublishSchedule struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// PublishTargeting carrega a audiência completa, com todas as localizações,
// para que campanhas multi-localização sejam preservadas no servidor
type PublishTargeting struct {
	Locations []Location `json:"locations"`
	Age       AgeRange   `json:"age"`
	Gender    string     `json:"gender"`
	Interests []string   `json:"interests"`
}

// PublishPayload é a requisição completa montada a partir do rascunho
type PublishPayload struct {
	CampaignName string           `json:"campaign_name"`
	AdsetName    string           `json:"adset_name"`
	AdName       string           `json:"ad_name"`
	Objective    Objective        `json:"objective"`
	Budget       Budget           `json:"budget"`
	Schedule     PublishSchedule  `json:"schedule"`
	Targeting    PublishTargeting `json:"targeting"`
	Placements   Placements       `json:"placements"`
	Creative     PublishCreative  `json:"creative"`
	WorkspaceID  string           `json:"workspace_id"`
	UserID       int              `json:"user_id"`
}

// PublishResult é o desfecho de uma tentativa de publicação
type PublishResult struct {
	State        PublishState `json:"state"`
	CampaignID   string       `json:"campaign_id,omitempty"`
	ErrorField   string       `json:"error_field,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Details      any          `json:"details,omitempty"`
}

// AdPreview é uma renderização opcional do anúncio; falhas de preview nunca
// bloqueiam a publicação
type AdPreview struct {
	Format      string `json:"format"`
	IframeSrc   string `json:"iframe_src,omitempty"`
	PreviewHTML string `json:"preview_html,omitempty"`
	Data        string `json:"data,omitempty"`
}
