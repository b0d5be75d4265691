package domain

import "time"

// Objetivos de campanha suportados pelo backend de publicação
type Objective string

const (
	ObjectiveBrandAwareness Objective = "BRAND_AWARENESS"
	ObjectiveReach          Objective = "REACH"
	ObjectiveEngagement     Objective = "ENGAGEMENT"
	ObjectiveLeadGeneration Objective = "LEAD_GENERATION"
	ObjectiveTraffic        Objective = "TRAFFIC"
	ObjectiveConversions    Objective = "CONVERSIONS"
)

func (o Objective) Valid() bool {
	switch o {
	case ObjectiveBrandAwareness, ObjectiveReach, ObjectiveEngagement,
		ObjectiveLeadGeneration, ObjectiveTraffic, ObjectiveConversions:
		return true
	}
	return false
}

// Passos do wizard de criação de campanha
const (
	StepObjective = 1
	StepAudience  = 2
	StepBudget    = 3
	StepPlacement = 4
	StepCreative  = 5
	StepReview    = 6
)

const (
	AudienceModeManual = "MANUAL"
	AudienceModeAI     = "AI"

	GenderAll    = "all"
	GenderMale   = "male"
	GenderFemale = "female"

	BudgetTypeDaily    = "daily"
	BudgetTypeLifetime = "lifetime"
)

// Limites de idade aceitos pelas plataformas de anúncio
const (
	MinTargetAge = 18
	MaxTargetAge = 65
)

type Location struct {
	Country      string   `json:"country"`
	CountryCode  *string  `json:"country_code,omitempty"`
	Region       *string  `json:"region,omitempty"`
	City         *string  `json:"city,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Radius       *float64 `json:"radius,omitempty"`
	DistanceUnit *string  `json:"distance_unit,omitempty"`
}

// IsValid indica se a localização pode ser usada em requisições de estimativa
func (l Location) IsValid() bool {
	return l.Country != ""
}

type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AppliedSuggestions rastreia quais campos de uma sugestão de IA já foram
// aplicados pelo usuário, para que a UI pare de sugerir aquele campo
type AppliedSuggestions struct {
	Location  bool `json:"location"`
	Age       bool `json:"age"`
	Gender    bool `json:"gender"`
	Interests bool `json:"interests"`
}

type Audience struct {
	Locations []Location         `json:"locations"`
	Age       AgeRange           `json:"age"`
	Gender    string             `json:"gender"`
	Interests []string           `json:"interests"`
	Mode      string             `json:"mode"`
	Applied   AppliedSuggestions `json:"applied"`
}

// ValidLocations retorna apenas as localizações com país preenchido,
// preservando a ordem original
func (a Audience) ValidLocations() []Location {
	valid := make([]Location, 0, len(a.Locations))
	for _, loc := range a.Locations {
		if loc.IsValid() {
			valid = append(valid, loc)
		}
	}
	return valid
}

type Budget struct {
	Amount    float64    `json:"amount"`
	Currency  string     `json:"currency"`
	Type      string     `json:"type" validate:"omitempty,budget_type"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type Placements struct {
	Automatic bool     `json:"automatic"`
	Manual    []string `json:"manual"`
}

type Creative struct {
	Name        string `json:"name,omitempty"`
	Headline    string `json:"headline"`
	PrimaryText string `json:"primary_text"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url,omitempty"`
	ImageID     string `json:"image_id,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	VideoID     string `json:"video_id,omitempty"`
}

// HasImage indica se o criativo referencia uma imagem
func (c Creative) HasImage() bool {
	return c.ImageURL != "" || c.ImageID != ""
}

// HasVideo indica se o criativo referencia um vídeo
func (c Creative) HasVideo() bool {
	return c.VideoURL != "" || c.VideoID != ""
}

// CampaignDraft é o agregado central do wizard: acumula a configuração da
// campanha passo a passo até a publicação ou o salvamento como rascunho
type CampaignDraft struct {
	Objective      Objective  `json:"objective"`
	Audience       Audience   `json:"audience"`
	Budget         Budget     `json:"budget"`
	Placements     Placements `json:"placements"`
	Creative       Creative   `json:"creative"`
	SelectedImages []string   `json:"selected_images"`
	WorkspaceID    string     `json:"workspace_id"`
	CurrentStep    int        `json:"current_step"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewCampaignDraft cria um rascunho vazio posicionado no primeiro passo
func NewCampaignDraft() *CampaignDraft {
	return &CampaignDraft{
		Audience: Audience{
			Locations: []Location{},
			Age:       AgeRange{Min: MinTargetAge, Max: MaxTargetAge},
			Gender:    GenderAll,
			Interests: []string{},
			Mode:      AudienceModeManual,
		},
		Budget: Budget{
			Currency: "USD",
			Type:     BudgetTypeDaily,
		},
		Placements: Placements{
			Automatic: true,
			Manual:    []string{},
		},
		SelectedImages: []string{},
		CurrentStep:    StepObjective,
	}
}

// DraftPatch é uma mutação parcial do rascunho ativo: somente as chaves de
// topo presentes são aplicadas (merge raso por chave)
type DraftPatch struct {
	Objective      *Objective     `json:"objective,omitempty" validate:"omitempty,objective"`
	Audience       *AudiencePatch `json:"audience,omitempty"`
	Budget         *Budget        `json:"budget,omitempty"`
	Placements     *Placements    `json:"placements,omitempty"`
	Creative       *Creative      `json:"creative,omitempty"`
	SelectedImages *[]string      `json:"selected_images,omitempty"`
	WorkspaceID    *string        `json:"workspace_id,omitempty"`
}

// AudiencePatch permite mutações granulares da audiência; Locations, quando
// presente, substitui a lista inteira
type AudiencePatch struct {
	Locations *[]Location         `json:"locations,omitempty"`
	Age       *AgeRange           `json:"age,omitempty"`
	Gender    *string             `json:"gender,omitempty" validate:"omitempty,gender"`
	Interests *[]string           `json:"interests,omitempty"`
	Mode      *string             `json:"mode,omitempty"`
	Applied   *AppliedSuggestions `json:"applied,omitempty"`
}
