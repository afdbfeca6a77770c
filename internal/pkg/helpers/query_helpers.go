package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

// queryValue returns the trimmed query parameter and whether it carries a value.
// A parameter sent empty (?status=) counts as absent.
func queryValue(c *gin.Context, key string) (string, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// OptionalString extracts a free-text filter
func OptionalString(c *gin.Context, key string) *string {
	v, ok := queryValue(c, key)
	if !ok {
		return nil
	}
	return &v
}

// OptionalInt extracts an integer query parameter. A value that is present
// but not an integer is an invalid query parameter error.
func OptionalInt(c *gin.Context, key string) (*int, error) {
	v, ok := queryValue(c, key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperrors.NewInvalidQueryParamError(fmt.Sprintf("Invalid %s parameter: must be an integer.", key))
	}
	return &n, nil
}

// OptionalInt64 extracts an identifier query parameter
func OptionalInt64(c *gin.Context, key string) (*int64, error) {
	v, ok := queryValue(c, key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, apperrors.NewInvalidQueryParamError(fmt.Sprintf("Invalid %s parameter: must be an integer.", key))
	}
	return &n, nil
}

// OptionalDate extracts a YYYY-MM-DD query parameter
func OptionalDate(c *gin.Context, key string) (*models.Date, error) {
	v, ok := queryValue(c, key)
	if !ok {
		return nil, nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return nil, apperrors.NewInvalidQueryParamError(fmt.Sprintf("Invalid %s parameter: expected YYYY-MM-DD.", key))
	}
	return &d, nil
}

// ParseIDParam extracts a positive integer path parameter
func ParseIDParam(c *gin.Context, key string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidQueryParamError(fmt.Sprintf("Invalid %s.", key))
	}
	return id, nil
}

// ReportFilters collects every report filter present on the request. Each
// report reads only the filters it supports.
func ReportFilters(c *gin.Context) (models.ReportFilters, error) {
	var f models.ReportFilters
	var err error

	f.University = OptionalString(c, "university")
	f.Semester = OptionalString(c, "semester")
	f.Status = OptionalString(c, "status")

	if f.YearOfStudy, err = OptionalInt(c, "year_of_study"); err != nil {
		return f, err
	}
	if f.SponsorID, err = OptionalInt64(c, "sponsor_id"); err != nil {
		return f, err
	}
	if f.DateFrom, err = OptionalDate(c, "date_from"); err != nil {
		return f, err
	}
	if f.DateTo, err = OptionalDate(c, "date_to"); err != nil {
		return f, err
	}
	return f, nil
}
