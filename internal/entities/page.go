// Package entities contains core business entities.
package entities

// Page holds one page of an ordered collection plus paging metadata.
// It is recomputed on every call and never persisted.
type Page[T any] struct {
	Data           []T `json:"data"`
	PageNumber     int `json:"page_number"`
	PageSize       int `json:"page_size"`
	TotalCount     int `json:"total_count"`
	TotalPageCount int `json:"total_page_count"`
}
