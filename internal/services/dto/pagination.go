package dto

// PaginationQuery carries the common listing query parameters.
type PaginationQuery struct {
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Search string `form:"search" validate:"omitempty,max=100"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalize fills defaults for missing page/limit values.
func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
}

type PaginationMeta struct {
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Limit       int   `json:"limit"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PaginationMeta{
		TotalItems:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		Limit:       limit,
	}
}

// ListResponse is the envelope for every paginated listing.
type ListResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func NewListResponse[T any](items []T, total int64, page, limit int) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &ListResponse[T]{
		Data: items,
		Meta: NewPaginationMeta(total, page, limit),
	}
}
