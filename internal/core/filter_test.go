package core_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lendboard/internal/core"
)

// stubEntry - минимальная запись для тестов конвейера.
type stubEntry struct {
	id       string
	name     string
	category string

	amount        decimal.Decimal
	amountInvalid bool

	date        time.Time
	dateInvalid bool
}

func (s stubEntry) SearchFields() []string { return []string{s.id, s.name} }
func (s stubEntry) Category() string       { return s.category }

func (s stubEntry) AmountKey() (decimal.Decimal, bool) { return s.amount, !s.amountInvalid }
func (s stubEntry) DateKey() (time.Time, bool)         { return s.date, !s.dateInvalid }

func stub(id, name, category string, amount int64) stubEntry {
	return stubEntry{id: id, name: name, category: category, amount: decimal.NewFromInt(amount)}
}

type FilterTestSuite struct {
	suite.Suite
	items []stubEntry
}

func (s *FilterTestSuite) SetupTest() {
	s.items = []stubEntry{
		stub("L-AAAA1111", "Budi Santoso", "pending", 100),
		stub("L-BBBB2222", "Siti Rahayu", "approved", 200),
		stub("L-CCCC3333", "Budi Hartono", "pending", 300),
	}
}

func (s *FilterTestSuite) TestIdentity() {
	// пустой запрос и категория-сентинель возвращают выборку как есть
	got := core.Filter(s.items, "", core.CategoryAll)
	s.Equal(s.items, got)
}

func (s *FilterTestSuite) TestSearchIsCaseInsensitiveSubstring() {
	testCases := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{name: "lowercase term", term: "budi", wantIDs: []string{"L-AAAA1111", "L-CCCC3333"}},
		{name: "mixed case term", term: "BuDi", wantIDs: []string{"L-AAAA1111", "L-CCCC3333"}},
		{name: "substring of id", term: "bbbb", wantIDs: []string{"L-BBBB2222"}},
		{name: "no match", term: "nothing", wantIDs: []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := core.Filter(s.items, tc.term, core.CategoryAll)

			gotIDs := make([]string, 0, len(got))
			for _, item := range got {
				gotIDs = append(gotIDs, item.id)
			}
			s.Equal(tc.wantIDs, gotIDs)
		})
	}
}

func (s *FilterTestSuite) TestCategoryExactMatch() {
	got := core.Filter(s.items, "", "pending")
	s.Len(got, 2)
	for _, item := range got {
		s.Equal("pending", item.category)
	}
}

func (s *FilterTestSuite) TestSearchAndCategoryCombineWithAnd() {
	got := core.Filter(s.items, "budi", "approved")
	s.Empty(got)

	got = core.Filter(s.items, "budi", "pending")
	s.Len(got, 2)
}

func (s *FilterTestSuite) TestPreservesOrder() {
	got := core.Filter(s.items, "", "pending")
	s.Require().Len(got, 2)
	s.Equal("L-AAAA1111", got[0].id)
	s.Equal("L-CCCC3333", got[1].id)
}

func (s *FilterTestSuite) TestEmptyInput() {
	s.Empty(core.Filter([]stubEntry{}, "budi", core.CategoryAll))
	s.Empty(core.Filter[stubEntry](nil, "", ""))
}

func TestFilterTestSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}
