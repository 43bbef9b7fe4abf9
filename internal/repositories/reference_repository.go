package repositories

import (
	"context"
	"database/sql"

	"tasklist/internal/models"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id string) (*models.Category, error)
}

type StatusRepository interface {
	FindAll(ctx context.Context) ([]models.Status, error)
	FindByID(ctx context.Context, id string) (*models.Status, error)
}

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category_id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.CategoryID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	c := &models.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT category_id, name FROM categories WHERE category_id = $1`, id,
	).Scan(&c.CategoryID, &c.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

type statusRepository struct {
	db *sql.DB
}

func NewStatusRepository(db *sql.DB) StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) FindAll(ctx context.Context) ([]models.Status, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status_id, name FROM statuses ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Status
	for rows.Next() {
		var s models.Status
		if err := rows.Scan(&s.StatusID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *statusRepository) FindByID(ctx context.Context, id string) (*models.Status, error) {
	s := &models.Status{}
	err := r.db.QueryRowContext(ctx,
		`SELECT status_id, name FROM statuses WHERE status_id = $1`, id,
	).Scan(&s.StatusID, &s.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
