package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inspecciones-api/internal/domain"
	"github.com/jhoicas/Inspecciones-api/internal/domain/entity"
	"github.com/jhoicas/Inspecciones-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `employee_number, first_name, last_name, email, password_hash, role, status, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario; si el número de empleado ya existe actualiza sus datos.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_number) DO UPDATE SET
			first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, email = EXCLUDED.email,
			role = EXCLUDED.role, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		user.EmployeeNumber, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email %s", domain.ErrDuplicate, user.Email)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmployeeNumber obtiene un usuario por número de empleado.
func (r *UserRepo) GetByEmployeeNumber(ctx context.Context, employeeNumber int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE employee_number = $1`, employeeNumber)
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) LIMIT 1`, email)
}

// ListByRole lista los usuarios activos del rol.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users WHERE role = $1 AND status = $2
		ORDER BY last_name, first_name`
	rows, err := r.q.Query(ctx, query, role, entity.UserStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// ResolveDisplayNames resuelve los nombres en una sola consulta (= ANY).
func (r *UserRepo) ResolveDisplayNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := r.q.Query(ctx, `SELECT employee_number, first_name, last_name FROM users WHERE employee_number = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve display names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.EmployeeNumber, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("scan display name: %w", err)
		}
		names[u.EmployeeNumber] = u.DisplayName()
	}
	return names, rows.Err()
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.EmployeeNumber, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
