package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, Round1(33.3333))
	assert.Equal(t, 66.7, Round1(66.6666))
	assert.Equal(t, 50.0, Round1(50))
	assert.Equal(t, -12.5, Round1(-12.46))
	assert.Equal(t, 0.0, Round1(0))
}

func TestGrowthPercent(t *testing.T) {
	assert.Equal(t, 50.0, GrowthPercent(3, 2))
	assert.Equal(t, -50.0, GrowthPercent(1, 2))
	assert.Equal(t, 0.0, GrowthPercent(0, 0))

	// 上月为 0 时增长率定义为 0，无论本月多少
	assert.Equal(t, 0.0, GrowthPercent(100, 0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, 100.0, Percent(5, 5))
	assert.Equal(t, 0.0, Percent(0, 10))
	assert.Equal(t, 0.0, Percent(3, 0))
}

func TestAvgCents(t *testing.T) {
	assert.Equal(t, int64(15000), AvgCents(30000, 2))
	assert.Equal(t, int64(3333), AvgCents(10000, 3))
	assert.Equal(t, int64(3334), AvgCents(10001, 3))
	assert.Equal(t, int64(0), AvgCents(0, 0))
	assert.Equal(t, int64(0), AvgCents(99999, 0))
}
