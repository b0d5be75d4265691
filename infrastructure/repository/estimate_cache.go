package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

// EstimateCache guarda resultados agregados de estimativa por configuração
// de rascunho, com expiração; é efêmero e opcional
type EstimateCache interface {
	Get(ctx context.Context, key string) (*domain.EstimateResult, error)
	Set(ctx context.Context, key string, result *domain.EstimateResult) error
}

type estimateCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewEstimateCache(rdb *redis.Client, ttl time.Duration) EstimateCache {
	return &estimateCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *estimateCache) Get(ctx context.Context, key string) (*domain.EstimateResult, error) {
	raw, err := c.rdb.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler cache de estimativa: %w", err)
	}

	result := &domain.EstimateResult{}
	if err := json.Unmarshal([]byte(raw), result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar cache de estimativa: %w", err)
	}

	return result, nil
}

func (c *estimateCache) Set(ctx context.Context, key string, result *domain.EstimateResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("erro ao serializar resultado de estimativa: %w", err)
	}

	if err := c.rdb.Set(ctx, cacheKey(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar cache de estimativa: %w", err)
	}

	return nil
}

func cacheKey(key string) string {
	return "estimate:" + key
}

// EstimateCacheKey deriva a chave de cache do conteúdo que influencia a
// estimativa: audiência, orçamento, criativo e workspace
func EstimateCacheKey(draft *domain.CampaignDraft) string {
	payload, err := json.Marshal(map[string]any{
		"audience":  draft.Audience,
		"budget":    draft.Budget,
		"creative":  draft.Creative,
		"workspace": draft.WorkspaceID,
		"objective": draft.Objective,
	})
	if err != nil {
		return ""
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
