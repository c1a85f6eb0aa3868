package postgres

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-ingest/internal/domain/match"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// markUnavailable tags retryable driver failures so the ingestion layer can
// classify them without importing this package.
func markUnavailable(err error) error {
	if err == nil {
		return nil
	}
	if isTransient(err) {
		return crerr.Mark(err, match.ErrUnavailable)
	}
	return err
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 08 = connection exceptions, class 53 = insufficient
		// resources, 57P01 = admin shutdown, 40001/40P01 = retryable
		// serialization failures.
		class := pqErr.Code.Class()
		if class == "08" || class == "53" {
			return true
		}
		switch pqErr.Code {
		case "57P01", "40001", "40P01":
			return true
		}
	}
	return false
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
