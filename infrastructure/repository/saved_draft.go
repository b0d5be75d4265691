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

const savedDraftTable = "saved_drafts"

// SavedDraftRepository guarda os snapshots imutáveis de rascunhos salvos.
// Retomar um rascunho é uma leitura não destrutiva
type SavedDraftRepository interface {
	Insert(record *domain.DraftRecord) error
	GetByID(userID int, id string) (*domain.DraftRecord, error)
	ListByUser(userID int) ([]*domain.DraftRecord, error)
	Delete(userID int, id string) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type savedDraftRepository struct {
	conn *postgres.Connection
}

func NewSavedDraftRepository(conn *postgres.Connection) SavedDraftRepository {
	return &savedDraftRepository{
		conn: conn,
	}
}

func (r *savedDraftRepository) Insert(record *domain.DraftRecord) error {
	rawDraft, err := json.Marshal(record.Draft)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot de rascunho: %w", err)
	}

	queryBuilder := squirrel.
		Insert(savedDraftTable).
		Columns("id", "user_id", "name", "draft", "created_at").
		Values(record.ID, record.UserID, record.Name, rawDraft, record.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar snapshot de rascunho: %w", err)
	}

	return nil
}

func (r *savedDraftRepository) GetByID(userID int, id string) (*domain.DraftRecord, error) {
	queryBuilder := squirrel.
		Select("sd.id", "sd.user_id", "sd.name", "sd.draft", "sd.created_at").
		From(savedDraftTable + " sd").
		Where(squirrel.Eq{"sd.user_id": userID, "sd.id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanDraftRecord(r.conn.QueryRow(sqlQuery, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar snapshot de rascunho: %w", err)
	}

	return record, nil
}

func (r *savedDraftRepository) ListByUser(userID int) ([]*domain.DraftRecord, error) {
	queryBuilder := squirrel.
		Select("sd.id", "sd.user_id", "sd.name", "sd.draft", "sd.created_at").
		From(savedDraftTable + " sd").
		Where(squirrel.Eq{"sd.user_id": userID}).
		OrderBy("sd.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.DraftRecord, 0)
	for rows.Next() {
		record, err := scanDraftRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler snapshot de rascunho: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar snapshots de rascunho: %w", err)
	}

	return records, nil
}

func (r *savedDraftRepository) Delete(userID int, id string) error {
	queryBuilder := squirrel.
		Delete(savedDraftTable).
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao remover snapshot de rascunho: %w", err)
	}

	return nil
}

// DeleteOlderThan remove snapshots mais antigos que o corte; usado pelo
// agendador de retenção
func (r *savedDraftRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	queryBuilder := squirrel.
		Delete(savedDraftTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots antigos: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraftRecord(row rowScanner) (*domain.DraftRecord, error) {
	record := &domain.DraftRecord{}
	var rawDraft []byte

	if err := row.Scan(&record.ID, &record.UserID, &record.Name, &rawDraft, &record.CreatedAt); err != nil {
		return nil, err
	}

	draft := &domain.CampaignDraft{}
	if err := json.Unmarshal(rawDraft, draft); err != nil {
		return nil, err
	}
	record.Draft = draft

	return record, nil
}
