package db

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

var userColumns = []string{"id", "username", "first_name", "last_name", "created_at", "updated_at"}

// DirectoryRepository persists categories and users.
type DirectoryRepository struct {
	drv dialect.Driver
}

// NewDirectoryRepository constructs a repository on top of an ent SQL driver.
func NewDirectoryRepository(drv dialect.Driver) *DirectoryRepository {
	return &DirectoryRepository{drv: drv}
}

var _ core.DirectoryRepository = (*DirectoryRepository)(nil)

// ListCategories returns every category ordered by name.
func (r *DirectoryRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	b := builder(r.drv)
	t := b.Table(CategoriesTable.Name)
	sel := b.Select(t.C("id"), t.C("name"), t.C("created_at")).
		From(t).
		OrderBy(t.C("name"))

	var categories []core.Category
	err := queryEach(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var category core.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return err
		}
		categories = append(categories, category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *DirectoryRepository) GetCategoryByName(ctx context.Context, name string) (*core.Category, error) {
	b := builder(r.drv)
	t := b.Table(CategoriesTable.Name)
	sel := b.Select(t.C("id"), t.C("name"), t.C("created_at")).
		From(t).
		Where(entsql.EQ(t.C("name"), name))

	var category core.Category
	err := queryOne(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		return rows.Scan(&category.ID, &category.Name, &category.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("category %q: %w", name, core.ErrNotFound)
		}
		return nil, err
	}
	return &category, nil
}

func (r *DirectoryRepository) CreateCategory(ctx context.Context, category core.Category) (*core.Category, error) {
	insert := builder(r.drv).Insert(CategoriesTable.Name).
		Columns("id", "name", "created_at").
		Values(category.ID, category.Name, category.CreatedAt)
	if err := execStmt(ctx, r.drv, insert); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetUser fetches a user by id.
func (r *DirectoryRepository) GetUser(ctx context.Context, id uuid.UUID) (*core.User, error) {
	return getUser(ctx, builder(r.drv), r.drv, id)
}

// UpsertUser inserts the user or refreshes its profile columns. CreatedAt of
// an existing row is kept.
func (r *DirectoryRepository) UpsertUser(ctx context.Context, user core.User) (*core.User, error) {
	var saved core.User
	err := withTx(ctx, r.drv, func(tx dialect.Tx) error {
		existing, err := getUser(ctx, builder(r.drv), tx, user.ID)
		switch {
		case err == nil:
			update := builder(r.drv).Update(UsersTable.Name).
				Set("username", user.Username).
				Set("first_name", user.FirstName).
				Set("last_name", user.LastName).
				Set("updated_at", user.UpdatedAt).
				Where(entsql.EQ("id", user.ID))
			if err := execStmt(ctx, tx, update); err != nil {
				return err
			}
			saved = user
			saved.CreatedAt = existing.CreatedAt
			return nil
		case errors.Is(err, core.ErrNotFound):
			insert := builder(r.drv).Insert(UsersTable.Name).
				Columns(userColumns...).
				Values(user.ID, user.Username, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt)
			if err := execStmt(ctx, tx, insert); err != nil {
				return err
			}
			saved = user
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func getUser(ctx context.Context, b *entsql.DialectBuilder, q dialect.ExecQuerier, id uuid.UUID) (*core.User, error) {
	t := b.Table(UsersTable.Name)
	sel := b.Select(qualified(t, userColumns)...).
		From(t).
		Where(entsql.EQ(t.C("id"), id))

	var user core.User
	err := queryOne(ctx, q, sel, func(rows *entsql.Rows) error {
		return rows.Scan(&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt)
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, core.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}
