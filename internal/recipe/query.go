package recipe

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultLimit = 20

// Query selects one page of recipes.
type Query struct {
	// Search matches recipe names case-insensitively as a substring.
	Search string
	// Page is 1-based.
	Page  int
	Limit int
}

// Page is the result of a Query.
type Page struct {
	Records      []Record
	TotalPages   int
	CurrentPage  int
	TotalRecords int
}

// Paginate filters records by q.Search, sorts them by name ignoring case and
// returns page q.Page. Pages past the end are empty. A non-positive page or
// limit falls back to 1 or DefaultLimit.
func Paginate(records []Record, q Query) Page {
	page := max(q.Page, 1)
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	matched := Search(records, q.Search)
	total := len(matched)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	start := total
	if page-1 < totalPages {
		start = (page - 1) * limit
	}
	end := start + min(limit, total-start)

	return Page{
		Records:      slices.Clone(matched[start:end]),
		TotalPages:   totalPages,
		CurrentPage:  page,
		TotalRecords: total,
	}
}

// Search returns the records whose name contains search, ignoring case,
// sorted by name ignoring case. An empty search matches every record. The
// input slice is not modified.
func Search(records []Record, search string) []Record {
	return sortByName(filterByName(records, search))
}

func filterByName(records []Record, search string) []Record {
	caser := cases.Lower(language.Und)
	search = caser.String(strings.TrimSpace(search))
	if search == "" {
		return slices.Clone(records)
	}

	var matched []Record
	for _, r := range records {
		if strings.Contains(caser.String(r.Name), search) {
			matched = append(matched, r)
		}
	}
	return matched
}

func sortByName(records []Record) []Record {
	caser := cases.Lower(language.Und)
	keys := make(map[string]string, len(records))
	for _, r := range records {
		keys[r.Name] = caser.String(r.Name)
	}
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(keys[a.Name], keys[b.Name])
	})
	return records
}
