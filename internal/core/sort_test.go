package core_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lendboard/internal/core"
)

type SortTestSuite struct {
	suite.Suite
}

func (s *SortTestSuite) TestByAmount() {
	items := []stubEntry{
		stub("a", "", "", 300),
		stub("b", "", "", 100),
		stub("c", "", "", 200),
	}

	asc := core.SortBy(items, core.SortFieldAmount, core.SortAsc)
	s.Equal([]string{"b", "c", "a"}, ids(asc))

	desc := core.SortBy(items, core.SortFieldAmount, core.SortDesc)
	s.Equal([]string{"a", "c", "b"}, ids(desc))
}

func (s *SortTestSuite) TestStableOnEqualKeys() {
	// записи с равным ключом сохраняют исходный относительный порядок
	items := []stubEntry{
		stub("first500", "", "", 500),
		stub("only100", "", "", 100),
		stub("second500", "", "", 500),
	}

	got := core.SortBy(items, core.SortFieldAmount, core.SortDesc)
	s.Equal([]string{"first500", "second500", "only100"}, ids(got))
}

func (s *SortTestSuite) TestByDate() {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	items := []stubEntry{
		{id: "mid", date: day(15)},
		{id: "new", date: day(25)},
		{id: "old", date: day(5)},
	}

	asc := core.SortBy(items, core.SortFieldDate, core.SortAsc)
	s.Equal([]string{"old", "mid", "new"}, ids(asc))

	desc := core.SortBy(items, core.SortFieldDate, core.SortDesc)
	s.Equal([]string{"new", "mid", "old"}, ids(desc))
}

func (s *SortTestSuite) TestInvalidKeysAlwaysLast() {
	items := []stubEntry{
		{id: "broken1", amount: decimal.Zero, amountInvalid: true},
		stub("small", "", "", 10),
		{id: "broken2", amount: decimal.Zero, amountInvalid: true},
		stub("big", "", "", 900),
	}

	asc := core.SortBy(items, core.SortFieldAmount, core.SortAsc)
	s.Equal([]string{"small", "big", "broken1", "broken2"}, ids(asc))

	// направление не влияет на хвост из невалидных записей
	desc := core.SortBy(items, core.SortFieldAmount, core.SortDesc)
	s.Equal([]string{"big", "small", "broken1", "broken2"}, ids(desc))
}

func (s *SortTestSuite) TestDoesNotMutateInput() {
	items := []stubEntry{
		stub("a", "", "", 300),
		stub("b", "", "", 100),
	}

	_ = core.SortBy(items, core.SortFieldAmount, core.SortAsc)
	s.Equal([]string{"a", "b"}, ids(items))
}

func ids(items []stubEntry) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.id)
	}
	return out
}

func TestSortTestSuite(t *testing.T) {
	suite.Run(t, new(SortTestSuite))
}
