package estimating

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

// normalizedSuggestion é o resultado de normalizar uma resposta do serviço
// de sugestão: ou uma sugestão pronta, ou uma referência para polling
type normalizedSuggestion struct {
	Suggestion   *domain.AISuggestion
	SuggestionID string
}

// shapeMatcher tenta reconhecer um formato de resposta; devolve o resultado
// tipado ou "sem correspondência". Os matchers são tentados em ordem fixa
type shapeMatcher func(raw json.RawMessage) (*normalizedSuggestion, bool)

// Preenchido em init: matchTopLevelArray e matchStringifiedJSON reaplicam
// normalizeSuggestion ao conteúdo, o que impede a inicialização direta
var suggestionMatchers []shapeMatcher

func init() {
	suggestionMatchers = []shapeMatcher{
		matchAsyncReference,
		matchEnvelopeObject,
		matchTopLevelArray,
		matchStringifiedJSON,
		matchBareAudience,
	}
}

// normalizeSuggestion percorre os matchers em sequência. O serviço remoto já
// respondeu com objeto aninhado, array de topo e JSON stringificado; tolerar
// todos os formatos é requisito, não acidente
func normalizeSuggestion(raw json.RawMessage) (*normalizedSuggestion, bool) {
	for _, matcher := range suggestionMatchers {
		if result, ok := matcher(raw); ok {
			return result, true
		}
	}
	return nil, false
}

// matchAsyncReference reconhece {suggestion_id: "..."} do fluxo assíncrono
func matchAsyncReference(raw json.RawMessage) (*normalizedSuggestion, bool) {
	var body struct {
		SuggestionID string `json:"suggestion_id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.SuggestionID == "" {
		return nil, false
	}

	return &normalizedSuggestion{SuggestionID: body.SuggestionID}, true
}

// matchEnvelopeObject reconhece {status?, suggestion: {...}, confidence?,
// explanation?}, o formato síncrono e o corpo do alvo de polling
func matchEnvelopeObject(raw json.RawMessage) (*normalizedSuggestion, bool) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false
	}

	rawSuggestion, hasSuggestion := body["suggestion"]
	status, hasStatus := body["status"].(string)
	if !hasSuggestion && !hasStatus {
		return nil, false
	}

	suggestion := &domain.AISuggestion{Status: domain.SuggestionStatusReady}

	if hasStatus {
		suggestion.Status = domain.SuggestionStatus(strings.ToUpper(status))
	}

	if id, ok := body["id"].(string); ok {
		suggestion.ID = id
	}
	if confidence, ok := body["confidence"].(float64); ok {
		suggestion.Confidence = &confidence
	}
	if explanation, ok := body["explanation"].(string); ok {
		suggestion.Explanation = explanation
	}

	if hasSuggestion {
		audience, ok := decodeAudience(rawSuggestion)
		if !ok {
			return nil, false
		}
		suggestion.Suggestion = audience
		if !hasStatus {
			suggestion.Status = domain.SuggestionStatusReady
		}
	}

	return &normalizedSuggestion{Suggestion: suggestion}, true
}

// matchTopLevelArray reconhece respostas embrulhadas em array; o primeiro
// elemento é tratado como o corpo real
func matchTopLevelArray(raw json.RawMessage) (*normalizedSuggestion, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil, false
	}

	return normalizeSuggestion(items[0])
}

// matchStringifiedJSON reconhece um corpo JSON serializado dentro de uma
// string e reaplica os matchers ao conteúdo
func matchStringifiedJSON(raw json.RawMessage) (*normalizedSuggestion, bool) {
	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil, false
	}

	trimmed := strings.TrimSpace(inner)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}

	return normalizeSuggestion(json.RawMessage(trimmed))
}

// matchBareAudience reconhece um objeto que já é a audiência sugerida, sem
// envelope
func matchBareAudience(raw json.RawMessage) (*normalizedSuggestion, bool) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, false
	}

	if _, ok := body["locations"]; !ok {
		if _, ok := body["interests"]; !ok {
			return nil, false
		}
	}

	audience, ok := decodeAudience(body)
	if !ok || audience.IsEmpty() {
		return nil, false
	}

	return &normalizedSuggestion{
		Suggestion: &domain.AISuggestion{
			Status:     domain.SuggestionStatusReady,
			Suggestion: audience,
		},
	}, true
}

// decodeAudience converte o mapa dinâmico na audiência sugerida tipada
func decodeAudience(value any) (*domain.SuggestedAudience, bool) {
	audience := &domain.SuggestedAudience{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           audience,
	})
	if err != nil {
		return nil, false
	}

	if err := decoder.Decode(value); err != nil {
		return nil, false
	}

	return audience, true
}
