package estimating

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	backenddomain "github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/repository"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/utils"
)

// EstimateDraft executa uma rodada de estimativa para o rascunho: uma
// requisição independente por localização válida. Sem localização válida o
// fluxo curto-circuita para NO_LOCATION sem tocar a rede
func (s *Service) EstimateDraft(ctx context.Context, draft *domain.CampaignDraft) *domain.EstimateResult {
	locations := draft.Audience.ValidLocations()
	if len(locations) == 0 {
		return &domain.EstimateResult{Status: domain.EstimateStatusNoLocation}
	}

	if s.cache != nil {
		if cached := s.cachedResult(ctx, draft); cached != nil {
			return cached
		}
	}

	type locationOutcome struct {
		estimate *domain.LocationEstimate
		err      error
	}

	outcomes := make([]locationOutcome, len(locations))

	var wg sync.WaitGroup
	for i, location := range locations {
		wg.Add(1)
		go func(i int, location domain.Location) {
			defer wg.Done()

			estimate, err := s.estimateLocation(ctx, draft, location)
			outcomes[i] = locationOutcome{estimate: estimate, err: err}
		}(i, location)
	}
	wg.Wait()

	perLocation := make([]domain.LocationEstimate, 0, len(locations))
	var firstErr error
	for _, outcome := range outcomes {
		if outcome.err != nil {
			// A falha de uma localização não aborta as demais
			if firstErr == nil {
				firstErr = outcome.err
			}
			continue
		}
		perLocation = append(perLocation, *outcome.estimate)
	}

	if len(perLocation) == 0 {
		category := backenddomain.Categorize(firstErr)
		logrus.WithError(firstErr).WithFields(logrus.Fields{
			"workspace_id": draft.WorkspaceID,
			"category":     category,
		}).Warn("estimate: all location requests failed")

		return &domain.EstimateResult{
			Status:        domain.EstimateStatusFailed,
			ErrorCategory: category,
			ErrorMessage:  errMessage(firstErr),
		}
	}

	result := aggregate(perLocation)

	if s.cache != nil {
		if err := s.cache.Set(ctx, repository.EstimateCacheKey(draft), result); err != nil {
			logrus.WithError(err).Debug("estimate: failed to cache result")
		}
	}

	return result
}

func (s *Service) estimateLocation(ctx context.Context, draft *domain.CampaignDraft, location domain.Location) (*domain.LocationEstimate, error) {
	req := &campaignbackend.EstimateRequest{
		Workspace: draft.WorkspaceID,
		Budget:    draft.Budget,
		Creative:  draft.Creative,
		Objective: draft.Objective,
	}
	req.Audience.Location = location
	req.Audience.Age = draft.Audience.Age
	req.Audience.Gender = draft.Audience.Gender
	req.Audience.Interests = draft.Audience.Interests

	resp, err := s.client.Estimate(ctx, req)
	if err != nil {
		return nil, err
	}

	return &domain.LocationEstimate{
		Location:                  location,
		EstimatedReach:            resp.EstimatedReach,
		EstimatedDailyImpressions: resp.EstimatedDailyImpressions,
		EstimatedDailyClicks:      resp.EstimatedDailyClicks,
		EstimatedCPC:              resp.EstimatedCPC,
		EstimatedCPA:              resp.EstimatedCPA,
		Confidence:                resp.Confidence,
	}, nil
}

// aggregate combina os resultados por localização: campos de alcance são
// somados e campos de taxa são a média aritmética entre as localizações
func aggregate(perLocation []domain.LocationEstimate) *domain.EstimateResult {
	result := &domain.EstimateResult{
		Status:         domain.EstimateStatusReady,
		LocationsCount: len(perLocation),
		PerLocation:    perLocation,
	}

	var cpcSum, cpaSum, confidenceSum float64
	for _, estimate := range perLocation {
		result.EstimatedReach += estimate.EstimatedReach
		result.EstimatedDailyImpressions += estimate.EstimatedDailyImpressions
		result.EstimatedDailyClicks += estimate.EstimatedDailyClicks
		cpcSum += estimate.EstimatedCPC
		cpaSum += estimate.EstimatedCPA
		confidenceSum += estimate.Confidence
	}

	count := float64(len(perLocation))
	result.EstimatedCPC = utils.RoundWithTwoDecimalPlace(cpcSum / count)
	result.EstimatedCPA = utils.RoundWithTwoDecimalPlace(cpaSum / count)
	result.Confidence = confidenceSum / count

	return result
}

func (s *Service) cachedResult(ctx context.Context, draft *domain.CampaignDraft) *domain.EstimateResult {
	key := repository.EstimateCacheKey(draft)
	if key == "" {
		return nil
	}

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).Debug("estimate: cache lookup failed")
		return nil
	}

	return cached
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
