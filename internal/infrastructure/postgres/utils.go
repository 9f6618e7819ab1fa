package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de PostgreSQL para violación de constraint único.
const sqlstateUniqueViolation = "23505"

// isUniqueViolation detecta un choque contra un índice único: email de
// usuario ya registrado, SKU o barcode de producto repetido.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlstateUniqueViolation
}
