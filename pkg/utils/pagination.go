package utils

import (
	"errors"
	"math"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination mirrors the paginator block the frontend reads
type Pagination struct {
	CurrentPage  int     `json:"current_page"`
	PerPage      int     `json:"per_page"`
	Total        int64   `json:"total"`
	LastPage     int     `json:"last_page"`
	From         *int    `json:"from"`
	To           *int    `json:"to"`
	HasMorePages bool    `json:"has_more_pages"`
	PrevPageURL  *string `json:"prev_page_url"`
	NextPageURL  *string `json:"next_page_url"`
}

// PageParams is the parsed page/per_page pair
type PageParams struct {
	Page    int
	PerPage int
}

// Offset for the current page
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ParsePageParams reads page and per_page from the query string.
// Missing or malformed values fall back to page 1 and defaultPerPage;
// per_page is capped at maxPerPage. Pages too large for the offset to be
// representable are clamped, which still lands past the last page.
func ParsePageParams(c *fiber.Ctx, defaultPerPage, maxPerPage int) PageParams {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if errors.Is(err, strconv.ErrRange) && page > 0 {
		err = nil
	}
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.Query("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}

	return PageParams{Page: page, PerPage: perPage}
}

// NewPagination computes the paginator block. pageURL may be nil, in which
// case prev/next URLs are always null.
func NewPagination(total int64, params PageParams, pageURL func(page int) string) Pagination {
	lastPage := 1
	if total > 0 {
		lastPage = int((total + int64(params.PerPage) - 1) / int64(params.PerPage))
	}

	p := Pagination{
		CurrentPage:  params.Page,
		PerPage:      params.PerPage,
		Total:        total,
		LastPage:     lastPage,
		HasMorePages: params.Page < lastPage,
	}

	offset := int64(params.Offset())
	if offset < total {
		from := int(offset) + 1
		to := int(min(offset+int64(params.PerPage), total))
		p.From = &from
		p.To = &to
	}

	if pageURL != nil {
		if params.Page > 1 {
			prev := pageURL(params.Page - 1)
			p.PrevPageURL = &prev
		}
		if p.HasMorePages {
			next := pageURL(params.Page + 1)
			p.NextPageURL = &next
		}
	}

	return p
}

// PageURLBuilder returns a function producing absolute URLs for the current
// request with only the page parameter replaced.
func PageURLBuilder(c *fiber.Ctx) func(page int) string {
	base := c.BaseURL() + c.Path()
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		query = url.Values{}
	}

	return func(page int) string {
		values := url.Values{}
		for key, v := range query {
			values[key] = append([]string(nil), v...)
		}
		values.Set("page", strconv.Itoa(page))
		return base + "?" + values.Encode()
	}
}
