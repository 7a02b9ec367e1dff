package repositories

import (
	"context"
	"database/sql"

	"github.com/yigit/schoolapi/internal/app/models"
	"github.com/yigit/schoolapi/internal/db"
	"github.com/yigit/schoolapi/internal/pkg/helpers"
)

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

// UserRepository handles user database operations
type UserRepository struct {
	baseRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.DB) *UserRepository {
	return &UserRepository{
		baseRepository: baseRepository{db: database, table: "users", entity: "user"},
	}
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt); err != nil {
		return nil, err
	}
	user.CreatedAt = user.CreatedAt.UTC()
	return &user, nil
}

// List retrieves all users ordered by id
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}
	err := r.queryAll(ctx, userColumns, func(row rowScanner) error {
		user, err := scanUser(row)
		if err != nil {
			return err
		}
		users = append(users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.get(ctx, r.db, id)
}

func (r *UserRepository) get(ctx context.Context, q db.Querier, id int64) (*models.User, error) {
	row, err := r.queryRow(ctx, q, userColumns, id)
	if err != nil {
		return nil, err
	}
	user, err := scanUser(row)
	if err != nil {
		return nil, r.scanError(err, id)
	}
	return user, nil
}

// Create inserts a user. Password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	var created *models.User
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		insert := r.db.Builder().Insert(r.table).
			Columns("username", "email", "password_hash", "created_at").
			Values(user.Username, user.Email, user.Password, helpers.NowUTC())
		id, err := r.insertReturningID(ctx, tx, insert)
		if err != nil {
			return err
		}
		created, err = r.get(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites username, email and password hash of an existing user
func (r *UserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	var updated *models.User
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		values := map[string]interface{}{
			"username":      user.Username,
			"email":         user.Email,
			"password_hash": user.Password,
		}
		if err := r.updateByID(ctx, tx, user.ID, values); err != nil {
			return err
		}
		var err error
		updated, err = r.get(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
