package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	tt := []struct {
		Name   string
		Cap    int
		Rows   [][]float64
		Expect [][]float64
		Count  int
	}{
		{
			Name:   "underfill",
			Cap:    3,
			Rows:   [][]float64{{1, 2}, {3, 4}},
			Expect: [][]float64{{1, 2}, {3, 4}},
			Count:  2,
		},
		{
			Name:   "fill",
			Cap:    2,
			Rows:   [][]float64{{1, 2}, {3, 4}},
			Expect: [][]float64{{1, 2}, {3, 4}},
			Count:  2,
		},
		{
			Name:   "overfill drops oldest",
			Cap:    2,
			Rows:   [][]float64{{1, 2}, {3, 4}, {5, 6}},
			Expect: [][]float64{{3, 4}, {5, 6}},
			Count:  3,
		},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			r, err := NewRecorder(tc.Cap)
			assert.NoError(t, err)
			for _, row := range tc.Rows {
				r.Record(row)
			}
			assert.Equal(t, tc.Expect, r.Rows())
			assert.Equal(t, tc.Count, r.Count())
			assert.Equal(t, tc.Cap, r.Capacity())
		})
	}
}

func TestRecorderReset(t *testing.T) {
	r, err := NewRecorder(2)
	assert.NoError(t, err)
	r.Record([]float64{1})
	r.Reset()
	assert.Equal(t, 0, r.Count())
	assert.Len(t, r.Rows(), 0)
	assert.Equal(t, 2, r.Capacity())
}

func TestRecorderCopiesRows(t *testing.T) {
	r, err := NewRecorder(2)
	assert.NoError(t, err)
	row := []float64{1, 2}
	r.Record(row)
	row[0] = 99
	assert.Equal(t, [][]float64{{1, 2}}, r.Rows())
}

func TestRecorderValidation(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := NewRecorder(size)
		assert.Error(t, err)
	}
}
