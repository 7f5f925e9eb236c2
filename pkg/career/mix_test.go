package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemandMixOf(t *testing.T) {
	m := DemandMixOf([]JobCard{
		{DemandLevel: DemandHigh},
		{DemandLevel: DemandHigh},
		{DemandLevel: DemandLow},
		{DemandLevel: DemandMedium},
	})
	assert.Equal(t, 4, m.Total)
	assert.Equal(t, DemandShare{Count: 2, Percent: 50}, m.High)
	assert.Equal(t, DemandShare{Count: 1, Percent: 25}, m.Medium)
	assert.Equal(t, DemandShare{Count: 1, Percent: 25}, m.Low)
}

func TestDemandMixOf_NoCards(t *testing.T) {
	m := DemandMixOf(nil)
	assert.Equal(t, DemandMix{}, m)

	m = DemandMixOf([]JobCard{})
	assert.Zero(t, m.High.Percent)
	assert.Zero(t, m.Medium.Percent)
	assert.Zero(t, m.Low.Percent)
}
