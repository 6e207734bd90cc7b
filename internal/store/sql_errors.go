package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorKind is the class of a failed statement that repositories translate
// into domain errors.
type ErrorKind int

const (
	// Unknown covers every error that is not a recognised constraint
	// violation.
	Unknown ErrorKind = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
)

// ErrorClassification is the result of [ErrorClassificator.Classify]: the
// kind of failure and, when the driver reports it, the violated constraint.
type ErrorClassification struct {
	Kind       ErrorKind
	Constraint string
}

// ErrorClassificator translates driver errors into an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unknown] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return ErrorClassification{}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return ErrorClassification{}
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code (class 23, integrity constraint violations).
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	classification := ErrorClassification{Constraint: pgErr.ConstraintName}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		classification.Kind = UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		classification.Kind = ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		classification.Kind = NotNullViolation
	}

	return classification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] using the extended result code.
// SQLite has no constraint names for unique indexes, so Constraint holds the
// offending column list ("users.username").
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ErrorClassification{}
	}

	classification := ErrorClassification{Constraint: sqliteConstraint(sqliteErr.Error())}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		classification.Kind = UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		classification.Kind = ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		classification.Kind = NotNullViolation
	}

	return classification
}

func sqliteConstraint(message string) string {
	const marker = "constraint failed: "
	if i := strings.Index(message, marker); i >= 0 {
		return message[i+len(marker):]
	}
	return ""
}

// classify is a nil-safe shortcut used by repositories.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return ErrorClassification{}
	}
	return db.errorClassificator.Classify(err)
}
