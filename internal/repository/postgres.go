package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nhalm/pgxkit"
	"github.com/yourorg/catalog/internal/models"
	"github.com/yourorg/catalog/internal/query"
)

// sortColumns whitelists sortBy values against real columns so a
// field name from the query string can never reach the SQL text.
var sortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"sku":         "sku",
	"price":       "price",
	"isAvailable": "is_available",
}

// PostgresProductRepository backs the catalog with Postgres through
// pgxkit. The listing pipeline compiles to a single SQL statement
// instead of running in memory.
type PostgresProductRepository struct {
	db *pgxkit.DB
}

func NewPostgresProductRepository(db *pgxkit.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO products (name, sku, price, is_available)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, sku, price, is_available`,
		p.Name, p.Sku, p.Price, p.IsAvailable,
	)
	return scanProduct(row)
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, sku, price, is_available FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresProductRepository) Update(ctx context.Context, p models.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET name = $2, sku = $3, price = $4, is_available = $5 WHERE id = $1`,
		p.ID, p.Name, p.Sku, p.Price, p.IsAvailable,
	)
	if err != nil {
		return translateConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id int) (*models.Product, error) {
	row := r.db.QueryRow(ctx,
		`DELETE FROM products WHERE id = $1
		 RETURNING id, name, sku, price, is_available`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, translateConflict(err)
	}
	return p, nil
}

func (r *PostgresProductRepository) List(ctx context.Context, q models.ProductQuery) ([]models.Product, error) {
	if q.Size() <= 0 {
		return []models.Product{}, nil
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT id, name, sku, price, is_available FROM products`)

	var where []string
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !q.IncludeUnavailable {
		where = append(where, "is_available = TRUE")
	}
	if q.MinPrice != nil && q.MaxPrice != nil {
		where = append(where, fmt.Sprintf("price >= %s AND price <= %s", arg(*q.MinPrice), arg(*q.MaxPrice)))
	}
	if q.Sku != "" {
		where = append(where, fmt.Sprintf("sku = %s", arg(q.Sku)))
	}
	if q.Name != "" {
		where = append(where, fmt.Sprintf("name ILIKE '%%' || %s || '%%'", arg(q.Name)))
	}
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}

	orderCol := "id"
	if col, ok := sortColumns[q.SortBy]; ok {
		orderCol = col
	}
	sb.WriteString(" ORDER BY " + orderCol)
	if q.SortOrder() == query.Descending {
		sb.WriteString(" DESC")
	}
	if orderCol != "id" {
		// Tie-break on id so pages are stable.
		sb.WriteString(", id")
	}

	sb.WriteString(fmt.Sprintf(" OFFSET %s LIMIT %s", arg(q.Offset()), arg(q.Size())))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Sku, &p.Price, &p.IsAvailable); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Sku, &p.Price, &p.IsAvailable); err != nil {
		return nil, err
	}
	return &p, nil
}

// translateConflict maps serialization and deadlock failures to
// ErrConflict so the service layer can apply its stale-update
// recovery. Everything else passes through untouched.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "40001" || pgErr.Code == "40P01" {
			return ErrConflict
		}
	}
	return err
}
