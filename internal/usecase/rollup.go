package usecase

import (
	"fmt"
	"sort"
	"strings"

	"daily-series/internal/domain"

	"github.com/shopspring/decimal"
)

// Rollup sums amountColumn over the distinct combinations of groupBy columns.
// A Date key is normalized to YYYY-MM-DD; rows with an unparseable date, a
// blank key or a non-numeric amount are skipped. The result has the grouping
// columns in the given order followed by the amount column, sorted by key;
// numeric keys sort by value and ahead of any non-numeric key.
func Rollup(table *domain.Table, groupBy []string, amountColumn string) (*domain.Table, error) {
	if table == nil {
		return nil, domain.ErrNoInput
	}
	if len(groupBy) == 0 {
		return nil, domain.ErrInvalidGrouping
	}
	if amountColumn == "" {
		amountColumn = domain.ColumnAmount
	}

	cols := append(append([]string(nil), groupBy...), amountColumn)
	idx, missing := table.Indexes(cols...)
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}
	keyIdx, amountIdx := idx[:len(groupBy)], idx[len(groupBy)]

	type group struct {
		keys  []string
		total decimal.Decimal
	}
	groups := make(map[string]*group)

rows:
	for i := range table.Rows {
		keys := make([]string, len(keyIdx))
		for k, c := range keyIdx {
			v := table.Cell(i, c)
			if groupBy[k] == domain.ColumnDate {
				d, ok := parseLenientDate(v)
				if !ok {
					continue rows
				}
				v = d.Format(domain.DateLayout)
			}
			if v == "" {
				continue rows
			}
			keys[k] = v
		}
		amount, err := parseAmount(table.Cell(i, amountIdx))
		if err != nil {
			continue
		}

		id := strings.Join(keys, "\x00")
		g, ok := groups[id]
		if !ok {
			g = &group{keys: keys, total: decimal.Zero}
			groups[id] = g
		}
		g.total = g.total.Add(amount)
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i].keys, ordered[j].keys
		for k := range a {
			if c := compareKeys(a[k], b[k]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	out := domain.NewTable(cols, make([][]string, len(ordered)))
	for i, g := range ordered {
		out.Rows[i] = append(append([]string(nil), g.keys...), g.total.String())
	}
	return out, nil
}

func compareKeys(a, b string) int {
	if a == b {
		return 0
	}
	da, errA := decimal.NewFromString(a)
	db, errB := decimal.NewFromString(b)
	switch {
	case errA == nil && errB == nil:
		if c := da.Cmp(db); c != 0 {
			return c
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
