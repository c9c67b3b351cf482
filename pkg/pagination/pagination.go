package pagination

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

const MaxLimit = 500

// Params holds the limit/offset window extracted from a list request.
// A zero Limit means the whole collection; windowing is opt-in.
type Params struct {
	Limit  int
	Offset int
}

// FromContext reads the limit and offset query parameters, clamping them to
// sane bounds. Absent parameters leave the window unbounded.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// SQL returns the LIMIT and OFFSET clause for SQL queries, or an empty
// string for an unbounded window. Both values are parsed integers, never
// raw input.
func (p Params) SQL() string {
	if p.Limit <= 0 {
		if p.Offset > 0 {
			return fmt.Sprintf("OFFSET %d", p.Offset)
		}
		return ""
	}
	return fmt.Sprintf("LIMIT %d OFFSET %d", p.Limit, p.Offset)
}

// HasNext reports whether more results exist after the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset+p.Limit < total
}

// NextOffset returns the offset for the next page.
func (p Params) NextOffset() int {
	return p.Offset + p.Limit
}
