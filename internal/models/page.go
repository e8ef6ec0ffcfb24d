package models

// PageRequest selects a 0-based page of Size items.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of items to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage builds a Page and derives TotalPages from total and the requested size.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
