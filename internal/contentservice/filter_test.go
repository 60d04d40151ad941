package contentservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	testCases := []struct {
		name     string
		build    func(b *whereBuilder)
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no clauses",
			build:    func(b *whereBuilder) {},
			wantSQL:  "",
			wantArgs: nil,
		},
		{
			name: "single clause",
			build: func(b *whereBuilder) {
				b.where("p.published = ?", true)
			},
			wantSQL:  "WHERE p.published = $1",
			wantArgs: []any{true},
		},
		{
			name: "clauses are conjoined in order",
			build: func(b *whereBuilder) {
				b.where("p.published = ?", true)
				b.where("(p.title LIKE ? OR p.content LIKE ?)", "%foo%", "%foo%")
			},
			wantSQL:  "WHERE p.published = $1 AND (p.title LIKE $2 OR p.content LIKE $3)",
			wantArgs: []any{true, "%foo%", "%foo%"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &whereBuilder{}
			tc.build(b)
			assert.Equal(t, tc.wantSQL, b.sql())
			assert.Equal(t, tc.wantArgs, b.args)
		})
	}
}

func TestWhereBuilderNext(t *testing.T) {
	b := &whereBuilder{}
	b.where("p.published = ?", true)

	assert.Equal(t, "$2", b.next(10))
	assert.Equal(t, "$3", b.next(5))
	assert.Equal(t, []any{true, 10, 5}, b.args)
}

func TestNewFeedQuery(t *testing.T) {
	testCases := []struct {
		name   string
		search string
		skip   string
		take   string
		sort   string
		want   FeedQuery
	}{
		{
			name: "all parameters absent",
			want: FeedQuery{Sort: SortDesc},
		},
		{
			name: "numeric skip and take",
			skip: "2",
			take: "3",
			want: FeedQuery{Skip: 2, Take: intptr(3), Sort: SortDesc},
		},
		{
			name: "non-numeric skip and take degrade to defaults",
			skip: "NaN",
			take: "lots",
			want: FeedQuery{Sort: SortDesc},
		},
		{
			name: "negative skip is ignored",
			skip: "-4",
			want: FeedQuery{Sort: SortDesc},
		},
		{
			name: "explicit zero take is honored",
			take: "0",
			want: FeedQuery{Take: intptr(0), Sort: SortDesc},
		},
		{
			name: "asc is the only value that sorts ascending",
			sort: "asc",
			want: FeedQuery{Sort: SortAsc},
		},
		{
			name: "any other sort value means descending",
			sort: "ASC",
			want: FeedQuery{Sort: SortDesc},
		},
		{
			name:   "search string is carried through",
			search: "foo",
			want:   FeedQuery{Search: "foo", Sort: SortDesc},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewFeedQuery(tc.search, tc.skip, tc.take, tc.sort)
			assert.Equal(t, tc.want, got)
		})
	}
}
