package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesColor(t *testing.T) {
	assert.Equal(t, 0., SeriesColor(0, 1))
	assert.Equal(t, -1., SeriesColor(0, 5))
	assert.Equal(t, 0., SeriesColor(2, 5))
	assert.Equal(t, 1., SeriesColor(4, 5))
}
