package repository

import (
	"errors"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var ErrInvalidPagination = errors.New("invalid pagination")

// Pagination is a validated 1-based page/limit pair.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages is the number of pages needed for total records.
func (p Pagination) Pages(total int64) int {
	return (int(total) + p.Limit - 1) / p.Limit
}

// ParsePagination parses the raw page/limit query values. Absent values get
// the defaults; present but non-numeric or out-of-range values are rejected
// rather than silently coerced.
func ParsePagination(pageStr, limitStr string) (Pagination, error) {
	p := Pagination{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil || v < 1 {
			return p, ErrInvalidPagination
		}
		p.Page = v
	}

	if limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil || v < 1 || v > MaxLimit {
			return p, ErrInvalidPagination
		}
		p.Limit = v
	}

	return p, nil
}
