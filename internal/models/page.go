package models

// Page carries pagination metadata for list responses.
type Page struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
}

func NewPage(total int64, page, perPage int) Page {
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return Page{Total: total, Pages: pages, CurrentPage: page}
}
