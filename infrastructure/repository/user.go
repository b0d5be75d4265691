package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/database/postgres"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

const userTable = "users u"

type UserRepository interface {
	GetUserByID(id int) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	CreateUser(user *domain.User) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByID(id int) (*domain.User, error) {
	return r.getUserBy(squirrel.Eq{"u.id": id})
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	return r.getUserBy(squirrel.Eq{"u.email": email})
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert("users").
		Columns("name", "lastname", "email", "password_hash", "active").
		Values(user.Name, user.Lastname, user.Email, user.PasswordHash, user.Active).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) getUserBy(condition squirrel.Eq) (*domain.User, error) {
	queryBuilder := squirrel.
		Select(
			"u.id",
			"u.name",
			"u.lastname",
			"u.email",
			"u.password_hash",
			"u.active",
			"u.created_at",
			"u.updated_at",
		).
		From(userTable).
		Where(condition).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.User{}
	row := r.conn.QueryRow(sqlQuery, args...)
	err = row.Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return user, nil
}
