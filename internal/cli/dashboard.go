package cli

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/aliaa11/userboard/internal/models"
)

// listFetcher is the slice of the API client the dashboard needs.
type listFetcher interface {
	ListUsers(ctx context.Context, page int) (*models.UserPage, error)
}

// errStaleFetch is returned when a fetch completes after a newer one has
// already been applied. The caller treats it as "nothing to show".
var errStaleFetch = stale("stale user list fetch superseded")

type stale string

func (s stale) Error() string { return string(s) }

// dashboard tracks the user list and its pagination between commands.
//
// Every fetch reserves a sequence number before the request goes out; a
// response is applied only if no later fetch has been applied already, so a
// slow response can never overwrite the result of a newer request.
type dashboard struct {
	fetcher listFetcher

	seq atomic.Uint64

	mu      sync.Mutex
	applied uint64
	page    *models.UserPage
}

func newDashboard(fetcher listFetcher) *dashboard {
	return &dashboard{fetcher: fetcher}
}

// load fetches the given page and makes it current, unless a later load has
// finished in the meantime, in which case errStaleFetch is returned and the
// current page is left untouched.
func (d *dashboard) load(ctx context.Context, page int) (*models.UserPage, error) {
	seq := d.seq.Add(1)

	result, err := d.fetcher.ListUsers(ctx, page)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq < d.applied {
		return nil, errStaleFetch
	}
	d.applied = seq
	d.page = result
	return result, nil
}

// current returns the last applied page, nil when nothing has been loaded.
func (d *dashboard) current() *models.UserPage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.page
}

// currentPageNumber returns the page number to base next/prev on, defaulting
// to 1 when nothing has been loaded yet.
func (d *dashboard) currentPageNumber() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.page == nil {
		return 1
	}
	return d.page.Pagination.CurrentPage
}

// lastPageNumber returns the known upper page bound, 1 when unknown.
func (d *dashboard) lastPageNumber() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.page == nil {
		return 1
	}
	return d.page.Pagination.LastPage
}

// reset drops all list state, used on login and logout.
func (d *dashboard) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.applied = 0
	d.page = nil
	d.seq.Store(0)
}
