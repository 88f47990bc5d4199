package directory

import "strings"

// DefaultPageSize is the number of users shown per page.
const DefaultPageSize = 4

// View is ephemeral search/pagination state over a fetched collection. It is
// a pure window: it never mutates the collection it is applied to.
type View struct {
	Query    string
	Page     int
	PageSize int
}

func NewView() View {
	return View{Page: 1, PageSize: DefaultPageSize}
}

// SetQuery updates the search string. Changing the query resets to page 1.
func (v *View) SetQuery(q string) {
	v.Query = q
	v.Page = 1
}

// Matches reports a case-insensitive substring match of query against the
// user's name or email. An empty query matches everyone.
func Matches(u User, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Email), q)
}

// Filtered returns the users matching the view's query, in original order.
func (v View) Filtered(users []User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if Matches(u, v.Query) {
			out = append(out, u)
		}
	}
	return out
}

// TotalPages is ceil(len(filtered)/pageSize); 0 for an empty filtered set.
func (v View) TotalPages(users []User) int {
	size := v.pageSize()
	return (len(v.Filtered(users)) + size - 1) / size
}

// Visible returns the current page window of the filtered set.
func (v View) Visible(users []User) []User {
	filtered := v.Filtered(users)
	size := v.pageSize()
	page := clampPage(v.Page, totalPages(len(filtered), size))
	if page == 0 {
		return nil
	}
	start := (page - 1) * size
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// HasPrev reports whether a previous page exists.
func (v View) HasPrev() bool {
	return v.Page > 1
}

// HasNext reports whether a further page exists for the given collection.
func (v View) HasNext(users []User) bool {
	return v.Page < v.TotalPages(users)
}

// Prev moves one page back, clamped at 1.
func (v *View) Prev() {
	if v.HasPrev() {
		v.Page--
	}
}

// Next moves one page forward, clamped at the last page.
func (v *View) Next(users []User) {
	if v.HasNext(users) {
		v.Page++
	}
}

// Clamp pulls the page back into [1, totalPages] after the collection or the
// filter shrank underneath it.
func (v *View) Clamp(users []User) {
	v.Page = clampPage(v.Page, v.TotalPages(users))
	if v.Page == 0 {
		v.Page = 1
	}
}

func (v View) pageSize() int {
	if v.PageSize > 0 {
		return v.PageSize
	}
	return DefaultPageSize
}

func totalPages(n, size int) int {
	return (n + size - 1) / size
}

func clampPage(page, total int) int {
	if total == 0 {
		return 0
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
