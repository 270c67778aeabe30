package models

import "fmt"

// Pagination mirrors the backend's list envelope metadata. Field names match
// the wire format; values describe the page that was actually returned.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
}

// Normalize fills in the defaults the backend omits for single-page results.
func (p *Pagination) Normalize() {
	if p.CurrentPage == 0 {
		p.CurrentPage = 1
	}
	if p.LastPage == 0 {
		p.LastPage = p.CurrentPage
	}
	if p.PerPage == 0 {
		p.PerPage = 10
	}
}

// Validate checks the page-window invariant 1 <= current_page <= last_page.
func (p Pagination) Validate() error {
	if p.CurrentPage < 1 || p.LastPage < 1 || p.CurrentPage > p.LastPage {
		return fmt.Errorf("invalid pagination: page %d of %d", p.CurrentPage, p.LastPage)
	}
	return nil
}

// UserPage is one page of the user list together with its pagination state.
type UserPage struct {
	Users []User
	Pagination
}
