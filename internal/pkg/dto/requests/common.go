package requests

type Pagination struct {
	Page int
}
