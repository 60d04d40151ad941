package contentservice

import (
	"fmt"
	"strconv"
	"strings"
)

// whereBuilder accumulates independent predicate clauses and conjoins whichever
// were added. Clauses are written with ? markers; each marker is rewritten to
// the next positional Postgres placeholder as its argument is appended.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (b *whereBuilder) where(clause string, args ...any) {
	for _, arg := range args {
		b.args = append(b.args, arg)
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(b.args)), 1)
	}
	b.clauses = append(b.clauses, clause)
}

// next returns the positional placeholder for one more argument appended after
// the WHERE clause, for LIMIT/OFFSET.
func (b *whereBuilder) next(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *whereBuilder) sql() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.clauses, " AND ")
}

// NewFeedQuery normalizes the raw feed parameters. Non-numeric skip or take
// degrade to zero skip and unbounded take instead of failing the request, and
// any sort value other than exactly "asc" means descending.
func NewFeedQuery(search, skip, take, sort string) FeedQuery {
	q := FeedQuery{Search: search, Sort: SortDesc}

	if n, err := strconv.Atoi(skip); err == nil && n > 0 {
		q.Skip = n
	}

	if n, err := strconv.Atoi(take); err == nil && n >= 0 {
		q.Take = &n
	}

	if sort == "asc" {
		q.Sort = SortAsc
	}

	return q
}
