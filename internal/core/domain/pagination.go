package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"net/url"
	"strconv"
)

// PageParams are the paging values a caller asked the API for. A zero Size
// means "server default".
type PageParams struct {
	Page int
	Size int
}

// Query renders the params as the API's page/size query string.
func (p PageParams) Query() url.Values {
	q := url.Values{}
	if p.Page > 0 || p.Size > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	return q
}

// Page is the one list shape every view consumes, whatever envelope the API
// used. Page is zero-based.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`

	// Skipped counts list elements that did not decode and were dropped.
	Skipped int `json:"-"`
}

// HasNext reports whether a page after this one exists.
func (p Page[T]) HasNext() bool {
	return p.Page+1 < p.TotalPages
}

// Alias chains, tried in order.
var (
	itemKeys       = []string{"content", "items", "data", "results", "registros"}
	totalKeys      = []string{"totalElements", "totalItems", "total", "totalRegistros"}
	pageKeys       = []string{"page", "pageNumber", "currentPage"}
	sizeKeys       = []string{"size", "pageSize"}
	totalPagesKeys = []string{"totalPages", "paginas"}
)

// NormalizePage reshapes a raw list response into a Page. raw may be a bare
// JSON array or an object carrying the list and its counters under any of
// the known aliases. It never fails: unreadable input yields an empty,
// single-page result.
func NormalizePage[T any](raw []byte, params PageParams) Page[T] {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return listPage[T](nil, 0, params)
		}
		items, skipped := decodeItems[T](elems)
		return listPage(items, skipped, params)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil || envelope == nil {
		return listPage[T](nil, 0, params)
	}

	items, skipped := extractItems[T](envelope)
	total := firstNumber(envelope, totalKeys, len(items))
	page := firstNumber(envelope, pageKeys, params.Page)
	size := firstNumber(envelope, sizeKeys, sizeOr(params, len(items)))
	totalPages := firstNumber(envelope, totalPagesKeys, computeTotalPages(total, size))

	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: max(totalPages, 1),
		Skipped:    skipped,
	}
}

func listPage[T any](items []T, skipped int, params PageParams) Page[T] {
	if items == nil {
		items = []T{}
	}
	size := sizeOr(params, len(items))
	return Page[T]{
		Items:      items,
		Total:      len(items),
		Page:       params.Page,
		PageSize:   size,
		TotalPages: computeTotalPages(len(items), size),
		Skipped:    skipped,
	}
}

// extractItems decodes the first alias holding a JSON array. Whether an
// alias hits depends only on it being an array; elements that do not decode
// into T are dropped and counted.
func extractItems[T any](envelope map[string]json.RawMessage) ([]T, int) {
	for _, key := range itemKeys {
		raw, ok := envelope[key]
		if !ok || isNull(raw) {
			continue
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			continue
		}
		return decodeItems[T](elems)
	}
	return []T{}, 0
}

func decodeItems[T any](elems []json.RawMessage) ([]T, int) {
	items := make([]T, 0, len(elems))
	skipped := 0
	for _, elem := range elems {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped
}

// firstNumber returns the first alias holding a non-negative integral number
// that fits an int. Anything else moves the search to the next alias.
func firstNumber(envelope map[string]json.RawMessage, keys []string, fallback int) int {
	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			continue
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f >= maxIntFloat {
			continue
		}
		return int(f)
	}
	return fallback
}

// maxIntFloat is the first float64 above math.MaxInt.
const maxIntFloat = float64(1 << (strconv.IntSize - 1))

func sizeOr(params PageParams, fallback int) int {
	if params.Size > 0 {
		return params.Size
	}
	return fallback
}

func computeTotalPages(total, size int) int {
	size = max(size, 1)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return max(pages, 1)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
