package category

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type CategoryRepo interface {
	// Store saves a category with append-or-replace-by-id semantics.
	Store(ctx context.Context, category Category) error
	// GetAll returns a full snapshot of the category collection ordered by position.
	GetAll(ctx context.Context) ([]Category, error)
	// Delete removes a category by id and reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)
	// Clear removes the whole category collection.
	Clear(ctx context.Context) error
}

type CategoryRepoImpl struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepoImpl {
	return &CategoryRepoImpl{db: db}
}

func (r CategoryRepoImpl) Store(ctx context.Context, category Category) error {
	query := `INSERT INTO category (id, name, icon, color, position) VALUES (?, ?, ?, ?, ?)
				ON CONFLICT (id) DO UPDATE SET name = excluded.name,
											icon = excluded.icon,
											color = excluded.color,
											position = excluded.position`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, category.ID, category.Name, category.Icon, category.Color, category.Position)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r CategoryRepoImpl) GetAll(ctx context.Context) ([]Category, error) {
	query := `SELECT id, name, icon, color, position FROM category ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Icon,
			&category.Color,
			&category.Position,
		); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return categories, nil
}

func (r CategoryRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := "DELETE FROM category WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r CategoryRepoImpl) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM category"); err != nil {
		err := fmt.Errorf("could not clear categories: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
