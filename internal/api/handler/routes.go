package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/api/handler/router"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/authenticating"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/estimating"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/publishing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

// Drafts expõe o rascunho ativo do wizard: leitura, mutação parcial,
// navegação entre passos e reinício
func Drafts(service drafting.DraftStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/draft",
			Method:  http.MethodGet,
			Handler: GetDraft(service),
		},
		{
			Path:    "/v1/draft",
			Method:  http.MethodPatch,
			Handler: PatchDraft(service),
		},
		{
			Path:    "/v1/draft",
			Method:  http.MethodDelete,
			Handler: ResetDraft(service),
		},
		{
			Path:    "/v1/draft/advance",
			Method:  http.MethodPost,
			Handler: AdvanceStep(service),
		},
		{
			Path:    "/v1/draft/rewind",
			Method:  http.MethodPost,
			Handler: RewindStep(service),
		},
	}
}

// SavedDrafts expõe os snapshots nomeados: salvar, listar, retomar e excluir
func SavedDrafts(service drafting.DraftStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/drafts",
			Method:  http.MethodPost,
			Handler: SaveDraft(service),
		},
		{
			Path:    "/v1/drafts",
			Method:  http.MethodGet,
			Handler: ListDrafts(service),
		},
		{
			Path:    "/v1/drafts/:id/resume",
			Method:  http.MethodPost,
			Handler: ResumeDraft(service),
		},
		{
			Path:    "/v1/drafts/:id",
			Method:  http.MethodDelete,
			Handler: DeleteDraft(service),
		},
	}
}

// Estimates expõe o fluxo de estimativa: disparo com debounce, consulta do
// resultado corrente e descarte de erro
func Estimates(service estimating.Estimator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/estimate/trigger",
			Method:  http.MethodPost,
			Handler: TriggerEstimate(service),
		},
		{
			Path:    "/v1/estimate",
			Method:  http.MethodGet,
			Handler: GetEstimate(service),
		},
		{
			Path:    "/v1/estimate/error",
			Method:  http.MethodDelete,
			Handler: DismissEstimateError(service),
		},
	}
}

func Suggestions(service estimating.Estimator, drafts drafting.DraftStore, backend campaignbackend.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/suggestions",
			Method:  http.MethodPost,
			Handler: RequestSuggestion(service, drafts, backend),
		},
		{
			Path:    "/v1/suggestions/ensure",
			Method:  http.MethodPost,
			Handler: EnsureSuggestion(service, drafts, backend),
		},
		{
			Path:    "/v1/suggestions",
			Method:  http.MethodGet,
			Handler: GetSuggestion(service),
		},
		{
			Path:    "/v1/suggestions",
			Method:  http.MethodDelete,
			Handler: DismissSuggestion(service),
		},
	}
}

func Publishing(service publishing.Publisher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/publish",
			Method:  http.MethodPost,
			Handler: Publish(service),
		},
		{
			Path:    "/v1/publish/retry",
			Method:  http.MethodPost,
			Handler: RetryPublish(service),
		},
		{
			Path:    "/v1/publish",
			Method:  http.MethodGet,
			Handler: PublishState(service),
		},
		{
			Path:    "/v1/publish",
			Method:  http.MethodDelete,
			Handler: DismissPublish(service),
		},
		{
			Path:    "/v1/previews",
			Method:  http.MethodPost,
			Handler: AdPreviews(service),
		},
	}
}

func Workspaces(backend campaignbackend.Client) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/workspaces",
			Method:  http.MethodGet,
			Handler: ListWorkspaces(backend),
		},
	}
}
