package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup filter,
	// or when the filter itself does not identify exactly one key.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when a user with the same name
	// already exists in the database.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrProjectNotFound is returned when no project has the requested id.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectAlreadyExists is returned when a project with the same name
	// already exists in the database.
	ErrProjectAlreadyExists = errors.New("project already exists")

	// ErrInvalidAssignmentReference is returned when an assignment refers to
	// a user or a project that does not exist.
	ErrInvalidAssignmentReference = errors.New("invalid project_id or user_id")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails for a reason that has no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
