package aggregate

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// DatePreset identifies a rolling date window relative to a reference time.
type DatePreset string

const (
	PresetAll   DatePreset = "all"
	PresetToday DatePreset = "today"
	PresetWeek  DatePreset = "week"
	PresetMonth DatePreset = "month"
	PresetYear  DatePreset = "year"
)

// IsValid returns true if the preset is one of the supported values.
func (p DatePreset) IsValid() bool {
	switch p {
	case PresetAll, PresetToday, PresetWeek, PresetMonth, PresetYear, "":
		return true
	}
	return false
}

// SortKey identifies the field a transaction list is ordered by.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
	SortByTitle  SortKey = "title"
)

// IsValid returns true if the sort key is one of the supported values.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByDate, SortByAmount, SortByTitle, "":
		return true
	}
	return false
}

// Query describes the filters and ordering applied to a transaction list.
// Zero-valued fields are ignored. Now anchors the date presets; callers pass
// the current time so the window is deterministic under test. StartDate and
// EndDate are inclusive instants; either may be nil.
type Query struct {
	Search    string
	Category  string
	Type      entity.TransactionType
	Preset    DatePreset
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    SortKey
	Ascending bool
	Now       time.Time
}

// Pagination describes the slice of a list returned to the caller.
// Page is 1-indexed. Pages is the total page count, zero when the list is
// empty.
type Pagination struct {
	Page  int
	Limit int
	Pages int
	Total int
}

const (
	// DefaultPageLimit is applied when the caller requests no limit.
	DefaultPageLimit = 50
	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit = 100
)

// Apply filters and sorts transactions according to the query. Filters
// combine conjunctively. The input slice is not modified; a new slice is
// returned. Sorting is stable, so equal elements keep their input order.
// Without an explicit sort key the list is ordered by date; Ascending is
// honored either way, so the zero query yields date descending.
func Apply(transactions []*entity.Transaction, query Query) []*entity.Transaction {
	result := make([]*entity.Transaction, 0, len(transactions))

	search := strings.ToLower(strings.TrimSpace(query.Search))
	windowStart, hasWindow := presetStart(query.Preset, query.Now)

	for _, txn := range transactions {
		if search != "" && !matchesSearch(txn, search) {
			continue
		}
		if query.Category != "" && txn.Category != query.Category {
			continue
		}
		if query.Type != "" && txn.Type != query.Type {
			continue
		}
		if hasWindow && txn.Date.Before(windowStart) {
			continue
		}
		if query.StartDate != nil && txn.Date.Before(*query.StartDate) {
			continue
		}
		if query.EndDate != nil && txn.Date.After(*query.EndDate) {
			continue
		}
		result = append(result, txn)
	}

	sortTransactions(result, query.SortBy, query.Ascending)

	return result
}

// Paginate slices a list into the requested page and reports the resulting
// pagination. Page values below 1 become 1, limits below 1 fall back to the
// default and limits above the cap are clamped. A page past the end of the
// list yields an empty slice.
func Paginate(transactions []*entity.Transaction, page, limit int) ([]*entity.Transaction, Pagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	total := len(transactions)
	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}

	start := (page - 1) * limit
	if start < 0 || start > total {
		// The product overflows for absurd page numbers; either way the
		// page is past the end of the list.
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return transactions[start:end], Pagination{
		Page:  page,
		Limit: limit,
		Pages: pages,
		Total: total,
	}
}

// matchesSearch reports whether the lowercased search term occurs in the
// transaction's title, description or category.
func matchesSearch(txn *entity.Transaction, search string) bool {
	return strings.Contains(strings.ToLower(txn.Title), search) ||
		strings.Contains(strings.ToLower(txn.Description), search) ||
		strings.Contains(strings.ToLower(txn.Category), search)
}

// presetStart returns the inclusive start of the preset's date window.
// The boolean is false when the preset does not restrict dates.
func presetStart(preset DatePreset, now time.Time) (time.Time, bool) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	switch preset {
	case PresetToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case PresetWeek:
		return now.AddDate(0, 0, -7), true
	case PresetMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case PresetYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

func sortTransactions(transactions []*entity.Transaction, key SortKey, ascending bool) {
	var less func(a, b *entity.Transaction) bool

	switch key {
	case SortByAmount:
		less = func(a, b *entity.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortByTitle:
		less = func(a, b *entity.Transaction) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	default:
		less = func(a, b *entity.Transaction) bool { return a.Date.Before(b.Date) }
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if ascending {
			return less(transactions[i], transactions[j])
		}
		return less(transactions[j], transactions[i])
	})
}
