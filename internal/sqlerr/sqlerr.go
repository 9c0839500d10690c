// Package sqlerr classifies Postgres driver errors into errs values so the
// API can answer constraint violations with a client error instead of a 500.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SQLSTATE codes we care about.
const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	NotNullViolation    = "23502"
	CheckViolation      = "23514"
)

// Handle converts err into an *errs.Error. table names the entity the caller
// was working on and is used for messages when the driver does not say.
// nil stays nil and existing *errs.Error values are returned unchanged.
func Handle(err error, table string) error {
	if err == nil {
		return nil
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NotFound(fmt.Sprintf("%s not found", entityName(table, ""))).
			WithCode(code(table, "NOT_FOUND"))
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return errs.Internal(err)
	}

	if pgErr.TableName != "" {
		table = pgErr.TableName
	}

	switch pgErr.Code {
	case ForeignKeyViolation:
		ref := referencedEntity(pgErr)
		e := errs.Validation(fmt.Sprintf("The referenced %s does not exist", ref))
		e.Code = code(ref, "NOT_FOUND")
		e.Err = err
		return e
	case UniqueViolation:
		e := errs.Conflict(code(table, "ALREADY_EXISTS"),
			fmt.Sprintf("A %s with these values already exists", entityName(table, "")))
		e.Err = err
		return e
	case NotNullViolation:
		field := strings.ToLower(pgErr.ColumnName)
		e := errs.Validation(fmt.Sprintf("The %s is required", humanize(field)),
			errs.FieldError{Field: field, Error: "is required"})
		e.Code = code(table, "REQUIRED")
		e.Err = err
		return e
	case CheckViolation:
		e := errs.Validation(fmt.Sprintf("The %s does not meet required conditions", entityName(table, "")))
		e.Code = code(table, "INVALID")
		e.Err = err
		return e
	default:
		return errs.Internal(err)
	}
}

// referencedEntity guesses the missing row's entity from a foreign key
// violation. Postgres reports the offending column only in Detail, e.g.
// `Key (route_id)=(7) is not present in table "routes".`
func referencedEntity(pgErr *pgconn.PgError) string {
	if i := strings.Index(pgErr.Detail, "Key ("); i >= 0 {
		rest := pgErr.Detail[i+len("Key ("):]
		if j := strings.Index(rest, ")"); j > 0 {
			return entityName("", rest[:j])
		}
	}
	if pgErr.ColumnName != "" {
		return entityName("", pgErr.ColumnName)
	}
	return entityName(pgErr.TableName, "")
}

// entityName prefers a "<entity>_id" column, then the table name singularized.
func entityName(table, column string) string {
	if column != "" && strings.HasSuffix(strings.ToLower(column), "_id") {
		return strings.ReplaceAll(strings.TrimSuffix(strings.ToLower(column), "_id"), "_", " ")
	}
	if table != "" {
		return strings.ReplaceAll(singular(table), "_", " ")
	}
	return "record"
}

func code(entity, action string) string {
	if entity == "" {
		entity = "record"
	}
	domain := strings.ToUpper(strings.ReplaceAll(singular(entity), " ", "_"))
	return domain + "_" + action
}

func singular(s string) string {
	if strings.HasSuffix(s, "s") && len(s) > 1 {
		return s[:len(s)-1]
	}
	return s
}

func humanize(s string) string {
	if s == "" {
		return "field"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
