package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
	"github.com/lib/pq"
)

const (
	sqlStateUndefinedTable  = "42P01"
	sqlStateUniqueViolation = "23505"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanProductRow scans a productColumns row. Works for both sql.Row and sql.Rows.
func scanProductRow(row scanner) (*v1.Product, error) {
	var (
		p         v1.Product
		category  string
		createdBy sql.NullInt64
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&category,
		&p.ImageURL,
		&p.LinkURL,
		&createdBy,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Category = v1.Category(category)
	if createdBy.Valid {
		id := createdBy.Int64
		p.CreatedBy = &id
	}
	return &p, nil
}

func scanUserRow(row scanner) (*v1.User, error) {
	var (
		u    v1.User
		role string
	)
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = v1.Role(role)
	return &u, nil
}

// classifyError maps driver errors onto the storage sentinels so callers never inspect
// driver types. SQLSTATE codes win; the message check only covers errors that lost
// their code on the way up (e.g. wrapped by a proxy).
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case sqlStateUndefinedTable:
			return fmt.Errorf("%w: %v", storage.ErrTableMissing, err)
		case sqlStateUniqueViolation:
			return fmt.Errorf("%w: %v", storage.ErrDuplicate, err)
		}
		return err
	}

	msg := err.Error()
	if strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist") {
		return fmt.Errorf("%w: %v", storage.ErrTableMissing, err)
	}
	return err
}

// buildSeedQuery expands the seed insert with one placeholder tuple per product.
func buildSeedQuery(products []v1.NewProduct) (string, []interface{}) {
	var b strings.Builder
	args := make([]interface{}, 0, len(products)*4)

	b.WriteString(querySeedProductsPrefix)
	for i, p := range products {
		if i > 0 {
			b.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, p.Name, string(p.Category), p.ImageURL, p.LinkURL)
	}
	b.WriteString(querySeedProductsSuffix)

	return b.String(), args
}

// buildUpdateQuery renders an UPDATE touching only the fields present in the patch.
// updated_at is always refreshed. The id is the last argument.
func buildUpdateQuery(id int64, patch v1.ProductPatch) (string, []interface{}) {
	var (
		sets []string
		args []interface{}
	)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Category != nil {
		add("category", string(*patch.Category))
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.LinkURL != nil {
		add("link_url", *patch.LinkURL)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE shop_products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), productColumns,
	)
	return query, args
}
