package services

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage = 1
	DefaultSize = 10
)

// ListQuery selects one page of a listing. Filter is matched as a substring
// against every column in Columns, joined with "or".
type ListQuery struct {
	Page    int
	Size    int
	Sort    string
	Desc    bool
	Filter  string
	Columns []string
}

// Encode renders q in the backend's query format, e.g.
//
//	page=1&size=10&sort=id,asc&filter=name~'tol' or email~'tol'
//
// with values URL-escaped. The filter is omitted when Filter or Columns is
// empty.
func (q ListQuery) Encode() string {
	page, size := q.Page, q.Size
	if page <= 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}

	parts := []string{
		"page=" + strconv.Itoa(page),
		"size=" + strconv.Itoa(size),
	}
	if q.Sort != "" {
		dir := "asc"
		if q.Desc {
			dir = "desc"
		}
		parts = append(parts, "sort="+url.QueryEscape(q.Sort+","+dir))
	}
	if f := q.filterExpr(); f != "" {
		parts = append(parts, "filter="+url.QueryEscape(f))
	}
	return strings.Join(parts, "&")
}

func (q ListQuery) filterExpr() string {
	if q.Filter == "" || len(q.Columns) == 0 {
		return ""
	}
	text := strings.ReplaceAll(q.Filter, "'", "")
	terms := make([]string, 0, len(q.Columns))
	for _, c := range q.Columns {
		terms = append(terms, c+"~'"+text+"'")
	}
	return strings.Join(terms, " or ")
}
