package validate

import "time"

// DateRange rejects endDate <= startDate when both bounds are present.
// Either bound alone is accepted.
func DateRange(start, end *time.Time) FieldErrors {
	if start == nil || end == nil {
		return nil
	}
	if !end.After(*start) {
		return FieldErrors{"endDate": "must be after startDate"}
	}
	return nil
}

// CertificateDate rejects any certificate date not strictly greater than both
// now and the course end date (when the course has one).
func CertificateDate(d time.Time, now time.Time, courseEnd *time.Time) FieldErrors {
	if !d.After(now) {
		return FieldErrors{"certificateDate": "must be in the future"}
	}
	if courseEnd != nil && !d.After(*courseEnd) {
		return FieldErrors{"certificateDate": "must be after the course end date"}
	}
	return nil
}
