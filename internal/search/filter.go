// Package search implements the predicate, ordering, pagination and facet
// semantics of job queries. The store backends execute these semantics; this
// package is the single definition of what a filter means.
package search

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mzansijobs/careerhub/internal/apperr"
	"github.com/mzansijobs/careerhub/internal/types"
)

// Pagination bounds. Pages are 1-indexed.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var validate = validator.New()

// Normalize fills filter defaults in place: page 1, clamped limit, ACTIVE
// status, relevance ordering.
func Normalize(f *types.SearchFilter) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Status == "" {
		f.Status = types.StatusActive
	}
	if f.SortBy == "" {
		f.SortBy = types.SortRelevance
	}
}

// Validate checks a client-supplied filter and reports violations as a
// validation error with field-level detail.
func Validate(f *types.SearchFilter) error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fmt.Sprintf("failed %q constraint", fe.Tag())
			}
			return apperr.ValidationFields(fields)
		}
		return apperr.Validation("filter", err.Error())
	}

	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMin > *f.SalaryMax {
		return apperr.Validation("salary_min", "must not exceed salary_max")
	}
	if f.Province != "" && !types.ValidProvince(f.Province) {
		return apperr.Validation("province", "unknown province")
	}
	return nil
}
