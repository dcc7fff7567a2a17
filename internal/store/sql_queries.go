package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const upsertAssignmentSuffix = `ON CONFLICT (project_id, user_id) DO UPDATE
		SET begins = EXCLUDED.begins, ends = EXCLUDED.ends
		RETURNING id`

func buildInsertUserQuery(user models.User) (string, []any, error) {
	password := sql.NullString{String: user.Password, Valid: user.Password != ""}

	return psql.
		Insert("users").
		Columns("name", "password", "is_admin").
		Values(user.Name, password, user.IsAdmin).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectUserQuery selects a single user, credentials included, by
// whichever key of filter is set.
func buildSelectUserQuery(filter models.UserFilter) (string, []any, error) {
	query := psql.
		Select("id", "name", "password", "is_admin").
		From("users").
		Limit(1)

	if filter.ID != uuid.Nil {
		query = query.Where("id = ?", filter.ID)
	} else {
		query = query.Where("name = ?", filter.Name)
	}

	return query.ToSql()
}

// buildSelectUsersQuery never selects the password column.
func buildSelectUsersQuery() (string, []any, error) {
	return psql.
		Select("id", "name", "is_admin").
		From("users").
		OrderBy("name").
		ToSql()
}

func buildInsertProjectQuery(project models.Project) (string, []any, error) {
	return psql.
		Insert("projects").
		Columns("name").
		Values(project.Name).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectProjectQuery(id uuid.UUID) (string, []any, error) {
	return psql.
		Select("id", "name").
		From("projects").
		Where("id = ?", id).
		ToSql()
}

func buildSelectProjectsQuery() (string, []any, error) {
	return psql.
		Select("id", "name").
		From("projects").
		OrderBy("name").
		ToSql()
}

func buildUpsertAssignmentQuery(assignment models.Assignment) (string, []any, error) {
	return psql.
		Insert("assignments").
		Columns("user_id", "project_id", "begins", "ends").
		Values(assignment.UserID, assignment.ProjectID, assignment.Begins, assignment.Ends).
		Suffix(upsertAssignmentSuffix).
		ToSql()
}

// selectAssignments joins every assignment with its user (without password)
// and its project so a single query returns complete rows.
func selectAssignments() sq.SelectBuilder {
	return psql.
		Select(
			"a.id", "a.user_id", "a.project_id", "a.begins", "a.ends",
			"u.name", "u.is_admin",
			"p.name",
		).
		From("assignments a").
		Join("users u ON u.id = a.user_id").
		Join("projects p ON p.id = a.project_id")
}

func buildSelectAssignmentQuery(id uuid.UUID) (string, []any, error) {
	return selectAssignments().
		Where("a.id = ?", id).
		ToSql()
}

func buildSelectAssignmentsQuery() (string, []any, error) {
	return selectAssignments().
		OrderBy("p.name", "u.name").
		ToSql()
}
