package domain

// Categorias de erro das chamadas de estimativa/sugestão. A classificação é
// feita a partir do status HTTP e do conteúdo da resposta do backend
type EstimateErrorCategory string

const (
	EstimateErrorSessionExpired     EstimateErrorCategory = "session-expired"
	EstimateErrorPermissionRequired EstimateErrorCategory = "permission-required"
	EstimateErrorRateLimited        EstimateErrorCategory = "rate-limited"
	EstimateErrorNetwork            EstimateErrorCategory = "network"
	EstimateErrorInvalidConfig      EstimateErrorCategory = "invalid-config"
	EstimateErrorGeneric            EstimateErrorCategory = "generic"
)

// Estados do fluxo de estimativa visíveis para o cliente
type EstimateStatus string

const (
	EstimateStatusIdle       EstimateStatus = "IDLE"
	EstimateStatusNoLocation EstimateStatus = "NO_LOCATION"
	EstimateStatusLoading    EstimateStatus = "LOADING"
	EstimateStatusReady      EstimateStatus = "READY"
	EstimateStatusFailed     EstimateStatus = "FAILED"
)

// LocationEstimate é o resultado de estimativa para uma única localização
type LocationEstimate struct {
	Location                  Location `json:"location"`
	EstimatedReach            int64    `json:"estimated_reach"`
	EstimatedDailyImpressions int64    `json:"estimated_daily_impressions"`
	EstimatedDailyClicks      int64    `json:"estimated_daily_clicks"`
	EstimatedCPC              float64  `json:"estimated_cpc"`
	EstimatedCPA              float64  `json:"estimated_cpa"`
	Confidence                float64  `json:"confidence"`
}

// EstimateResult agrega os resultados por localização: campos de alcance são
// somados entre localizações e campos de taxa (cpc, cpa, confiança) são a
// média aritmética, já que alcance é aditivo entre geografias disjuntas mas
// economia unitária não é
type EstimateResult struct {
	Status                    EstimateStatus        `json:"status"`
	EstimatedReach            int64                 `json:"estimated_reach"`
	EstimatedDailyImpressions int64                 `json:"estimated_daily_impressions"`
	EstimatedDailyClicks      int64                 `json:"estimated_daily_clicks"`
	EstimatedCPC              float64               `json:"estimated_cpc"`
	EstimatedCPA              float64               `json:"estimated_cpa"`
	Confidence                float64               `json:"confidence"`
	LocationsCount            int                   `json:"locations_count"`
	PerLocation               []LocationEstimate    `json:"per_location,omitempty"`
	ErrorCategory             EstimateErrorCategory `json:"error_category,omitempty"`
	ErrorMessage              string                `json:"error_message,omitempty"`
}
