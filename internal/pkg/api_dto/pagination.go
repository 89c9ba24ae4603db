package api_dto

// Paginated is the Laravel paginator envelope returned by list endpoints.
type Paginated[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// ErrorBody is the body of a non-2xx answer. Errors is only set on 422.
type ErrorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func (b ErrorBody) FirstMessage() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
