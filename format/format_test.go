package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {

	assert.Equal(t, "999", Compact(999.0))
	assert.Equal(t, "1.5K", Compact(1500.0))
	assert.Equal(t, "2.5M", Compact(2_500_000.0))
	assert.Equal(t, "0", Compact(0.0))
	assert.Equal(t, "-1.2K", Compact(-1200.0))
}

func TestCompactGrouping(t *testing.T) {

	// under a thousand stays a grouped integer; at scale the suffix wins
	assert.Equal(t, "12.3M", Compact(12_345_678.0))
	assert.Equal(t, "42", Compact(42))
}

func TestCompactParseFailure(t *testing.T) {

	assert.Equal(t, "0", Compact("not-a-number"))
	assert.Equal(t, "1.5K", Compact("1500"))
}

func TestCurrency(t *testing.T) {

	assert.Equal(t, "$1,234.50", Currency(1234.5))
	assert.Equal(t, "$0.00", Currency("invalid"))
	assert.Equal(t, "$12.00", Currency(12))
}

func TestPercent(t *testing.T) {

	assert.Equal(t, "42.0%", Percent(0.42, 1))
	assert.Equal(t, "7%", Percent(0.07, 0))
	assert.Equal(t, "12.35%", Percent(0.123456, 2))
}
