package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"finboard/internal/models"
)

var (
	ErrInvalidDate       = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidPagination = errors.New("page and limit must be positive integers")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidSortOrder  = errors.New("sort order must be \"asc\" or \"desc\"")
)

const dateLayout = "2006-01-02"

// BuildFilters translates raw filter fields into a query filter scoped to
// the caller. The "all" sentinel and an absent value both mean "no
// constraint"; category and status are otherwise passed through verbatim,
// so an unrecognized value matches zero records rather than failing. Malformed
// dates are an error, never an unbounded range.
func BuildFilters(identity models.Identity, search, category, status, dateFrom, dateTo string) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		UserID: identity.UserID,
		Search: search,
	}

	if category != "" && category != models.FilterAll {
		filters.Category = category
	}
	if status != "" && status != models.FilterAll {
		filters.Status = status
	}

	if dateFrom != "" {
		from, err := time.Parse(dateLayout, dateFrom)
		if err != nil {
			return models.TransactionFilters{}, fmt.Errorf("%w: dateFrom %q", ErrInvalidDate, dateFrom)
		}
		filters.DateFrom = &from
	}

	if dateTo != "" {
		to, err := time.Parse(dateLayout, dateTo)
		if err != nil {
			return models.TransactionFilters{}, fmt.Errorf("%w: dateTo %q", ErrInvalidDate, dateTo)
		}
		// Upper bound is inclusive of the whole day
		endOfDay := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filters.DateTo = &endOfDay
	}

	return filters, nil
}

// ParseListParams validates raw pagination and sort parameters. Absent
// values fall back to the defaults; present but non-numeric or non-positive
// page/limit values are an error rather than being silently clamped.
func ParseListParams(page, limit, sortBy, sortOrder string) (models.ListParams, error) {
	params := models.ListParams{
		Page:      models.DefaultPage,
		Limit:     models.DefaultPageSize,
		SortBy:    models.DefaultSortBy,
		SortOrder: models.SortOrderDesc,
	}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return models.ListParams{}, fmt.Errorf("%w: page %q", ErrInvalidPagination, page)
		}
		params.Page = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			return models.ListParams{}, fmt.Errorf("%w: limit %q", ErrInvalidPagination, limit)
		}
		params.Limit = n
	}

	if sortBy != "" {
		params.SortBy = sortBy
	}
	if _, ok := params.SortColumn(); !ok {
		return models.ListParams{}, fmt.Errorf("%w: %q", ErrInvalidSortField, sortBy)
	}

	if sortOrder != "" {
		if sortOrder != models.SortOrderAsc && sortOrder != models.SortOrderDesc {
			return models.ListParams{}, fmt.Errorf("%w: %q", ErrInvalidSortOrder, sortOrder)
		}
		params.SortOrder = sortOrder
	}

	return params, nil
}
