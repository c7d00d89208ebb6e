package types

type Filter struct {
	Search         string
	Filter         map[string]interface{}
	Sort           map[string]string
	Page           int
	Limit          int
	Offset         int
	WithPagination bool
}

func NewFilter() Filter {
	return Filter{
		Filter: make(map[string]interface{}),
		Sort:   make(map[string]string),
	}
}
