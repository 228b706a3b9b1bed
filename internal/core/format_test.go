package core_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lendboard/internal/core"
)

type FormatTestSuite struct {
	suite.Suite
}

func TestFormatTestSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}

func (s *FormatTestSuite) TestFormatIDR() {
	s.Equal("Rp0", core.FormatIDR(decimal.Zero))
	s.Equal("Rp584.325,5", core.FormatIDR(decimal.RequireFromString("584325.5")))
	s.Equal("Rp1.250.000,05", core.FormatIDR(decimal.RequireFromString("1250000.05")))
	s.Equal("-Rp75.000", core.FormatIDR(decimal.NewFromInt(-75_000)))
}

func (s *FormatTestSuite) TestFormatIDRKeepsDecimalPrecision() {
	// суммы за пределами точности float64 не теряют младшие разряды
	s.Equal(
		"Rp9.007.199.254.740.993,25",
		core.FormatIDR(decimal.RequireFromString("9007199254740993.25")),
	)
	s.Equal(
		"Rp92.233.720.368.547.758.080",
		core.FormatIDR(decimal.RequireFromString("92233720368547758080")),
	)
}

func (s *FormatTestSuite) TestFormatDateID() {
	s.Equal("15 Juni 2023", core.FormatDateID(time.Date(2023, time.June, 15, 10, 30, 0, 0, time.UTC)))
	s.Equal("", core.FormatDateID(time.Time{}))
}
