package domain

type SuggestionStatus string

const (
	SuggestionStatusPending SuggestionStatus = "PENDING"
	SuggestionStatusReady   SuggestionStatus = "READY"
	SuggestionStatusFailed  SuggestionStatus = "FAILED"
)

// SuggestedAudience é a audiência parcial proposta pela IA; todos os campos
// são opcionais e podem ser aplicados individualmente ao rascunho
type SuggestedAudience struct {
	Locations []Location `json:"locations,omitempty"`
	Age       *AgeRange  `json:"age,omitempty"`
	Gender    *string    `json:"gender,omitempty"`
	Interests []string   `json:"interests,omitempty"`
}

// IsEmpty indica se a sugestão não trouxe nenhum campo aproveitável
func (s SuggestedAudience) IsEmpty() bool {
	return len(s.Locations) == 0 && s.Age == nil && s.Gender == nil && len(s.Interests) == 0
}

// AISuggestion é efêmera: criada na requisição, transita PENDING→READY|FAILED
// via polling ou resposta síncrona e é descartada ao ser dispensada ou
// substituída por uma nova requisição
type AISuggestion struct {
	ID          string             `json:"id,omitempty"`
	Status      SuggestionStatus   `json:"status"`
	Suggestion  *SuggestedAudience `json:"suggestion,omitempty"`
	Confidence  *float64           `json:"confidence,omitempty"`
	Explanation string             `json:"explanation,omitempty"`
}

// Terminal indica se o polling deve parar neste status
func (s *AISuggestion) Terminal() bool {
	return s.Status == SuggestionStatusReady || s.Status == SuggestionStatusFailed
}
