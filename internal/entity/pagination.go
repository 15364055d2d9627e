package entity

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	return &PaginationInput{
		Limit:  limit,
		Offset: offset,
	}
}

// Paginate cuts a page out of an already filtered result. A nil input returns everything.
func Paginate[T any](items []T, pg *PaginationInput) []T {
	if pg == nil {
		return items
	}
	if pg.Offset >= len(items) {
		return make([]T, 0)
	}

	end := pg.Offset + pg.Limit
	if end > len(items) {
		end = len(items)
	}

	return items[pg.Offset:end]
}
