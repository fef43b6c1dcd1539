package models

// Page is one page of a paginated listing.
type Page[T any] struct {
	Data          []T `json:"data"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
}

// TotalPages returns the number of pages implied by TotalElements and Size.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.TotalElements + p.Size - 1) / p.Size
}
