package store

import "errors"

// Sentinel errors returned by repository and media storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrUserNotFound is returned when a lookup by username or id matches no
	// account.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when the unique index on
	// users.username rejects an insert.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when the unique index on users.email
	// rejects an insert.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrMusicNotFound is returned when a track does not exist (or vanished
	// while it was being referenced).
	ErrMusicNotFound = errors.New("music not found")

	// ErrPlaylistNotFound is returned when a playlist does not exist.
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrMediaNotFound is returned when a stored file is absent.
	ErrMediaNotFound = errors.New("media not found")

	// ErrInvalidMediaKey is returned for keys that are empty, absolute or
	// escape the media root.
	ErrInvalidMediaKey = errors.New("invalid media key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
