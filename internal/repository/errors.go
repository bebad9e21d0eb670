package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"fyyur/internal/interfaces"
)

var (
	ErrVenueNotFound  = fmt.Errorf("venue %w", interfaces.ErrNotFound)
	ErrArtistNotFound = fmt.Errorf("artist %w", interfaces.ErrNotFound)
	ErrShowNotFound   = fmt.Errorf("show %w", interfaces.ErrNotFound)
)

// foreignKeyViolation is the PostgreSQL error code for a missing referenced row.
const foreignKeyViolation = "23503"

// asReferentialError maps a foreign key violation on the shows table to an
// *interfaces.ReferentialError. Any other error is returned as is.
func asReferentialError(err error, show artistVenueRef) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != foreignKeyViolation {
		return err
	}
	switch {
	case strings.Contains(pqErr.Constraint, "artist"):
		return &interfaces.ReferentialError{Resource: "artist", ID: show.artistID}
	case strings.Contains(pqErr.Constraint, "venue"):
		return &interfaces.ReferentialError{Resource: "venue", ID: show.venueID}
	default:
		return &interfaces.ReferentialError{Resource: "record"}
	}
}

type artistVenueRef struct {
	artistID int
	venueID  int
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// likePattern escapes LIKE wildcards in term and wraps it for a substring match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
