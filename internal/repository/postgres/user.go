package postgres

import (
	"database/sql"

	"monedero/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// UpsertUser creates the user if absent. An existing row is never
// overwritten by a later upsert.
func (r *UserRepo) UpsertUser(user domain.User) error {
	query := `
		INSERT INTO users (id, username, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(query, user.ID, user.Username, user.FirstName, user.LastName)
	return err
}
