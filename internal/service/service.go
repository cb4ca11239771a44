package service

// Page is the service-level envelope for paginated results.
// Report and list endpoints serialize it directly.
type Page[T any] struct {
	Data          []T `json:"data"`
	TotalElements int `json:"totalElements"`
	Offset        int `json:"offset"`
	Limit         int `json:"limit"`
}
