package validate

import "strconv"

// DefaultPageLimit applies when no limit parameter is sent.
const DefaultPageLimit = 10

// Page is the resolved pagination window for a list query.
type Page struct {
	Limit int
	Skip  int
}

// ParsePage resolves limit/offset/page query parameters into a window.
// Skip equals offset when offset is provided; otherwise (page-1)*limit when
// page is provided; otherwise 0. Empty strings mean "not provided".
func ParsePage(limitStr, offsetStr, pageStr string) (Page, FieldErrors) {
	errs := FieldErrors{}

	limit := DefaultPageLimit
	if limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			errs["limit"] = "must be a positive integer"
		} else {
			limit = n
		}
	}

	skip := 0
	switch {
	case offsetStr != "":
		n, err := strconv.Atoi(offsetStr)
		if err != nil || n < 0 {
			errs["offset"] = "must be a non-negative integer"
		} else {
			skip = n
		}
	case pageStr != "":
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			errs["page"] = "must be a positive integer"
		} else {
			skip = (n - 1) * limit
		}
	}

	if len(errs) > 0 {
		return Page{}, errs
	}
	return Page{Limit: limit, Skip: skip}, nil
}
