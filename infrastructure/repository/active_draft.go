// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/database/postgres"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

const activeDraftTable = "active_drafts"

// ActiveDraftRepository persiste o rascunho ativo de cada usuário como um
// envelope {state, version} sob uma chave fixa (o id do usuário), para que
// um recarregamento retome o wizard no mesmo passo
type ActiveDraftRepository interface {
	Get(userID int) (*domain.DraftEnvelope, error)
	Save(userID int, envelope *domain.DraftEnvelope) error
	Delete(userID int) error
}

type activeDraftRepository struct {
	conn *postgres.Connection
}

func NewActiveDraftRepository(conn *postgres.Connection) ActiveDraftRepository {
	return &activeDraftRepository{
		conn: conn,
	}
}

func (r *activeDraftRepository) Get(userID int) (*domain.DraftEnvelope, error) {
	queryBuilder := squirrel.
		Select("ad.state", "ad.version").
		From(activeDraftTable + " ad").
		Where(squirrel.Eq{"ad.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var rawState []byte
	var version int

	row := r.conn.QueryRow(sqlQuery, args...)
	if err := row.Scan(&rawState, &version); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar rascunho ativo: %w", err)
	}

	state := &domain.CampaignDraft{}
	if err := json.Unmarshal(rawState, state); err != nil {
		return nil, fmt.Errorf("erro ao decodificar rascunho ativo: %w", err)
	}

	return &domain.DraftEnvelope{
		State:   state,
		Version: version,
	}, nil
}

func (r *activeDraftRepository) Save(userID int, envelope *domain.DraftEnvelope) error {
	rawState, err := json.Marshal(envelope.State)
	if err != nil {
		return fmt.Errorf("erro ao serializar rascunho ativo: %w", err)
	}

	queryBuilder := squirrel.
		Insert(activeDraftTable).
		Columns("user_id", "state", "version", "updated_at").
		Values(userID, rawState, envelope.Version, time.Now()).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET state = EXCLUDED.state, version = EXCLUDED.version, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar rascunho ativo: %w", err)
	}

	return nil
}

func (r *activeDraftRepository) Delete(userID int) error {
	queryBuilder := squirrel.
		Delete(activeDraftTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao remover rascunho ativo: %w", err)
	}

	return nil
}
