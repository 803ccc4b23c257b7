package monitor

import "fmt"

// Recorder is a bounded buffer of baseline subgroups collected before a
// chart is fitted.
type Recorder struct {
	count int
	rows  [][]float64
}

// NewRecorder creates a recorder with a capacity of cap subgroups
func NewRecorder(cap int) (*Recorder, error) {
	if cap <= 0 {
		return nil, fmt.Errorf("recorder must be initialized with a capacity >= 1")
	}
	return &Recorder{rows: make([][]float64, 0, cap)}, nil
}

// Record adds a new subgroup, dropping the oldest when at capacity
func (r *Recorder) Record(row []float64) {
	cp := append([]float64(nil), row...)
	if len(r.rows) < cap(r.rows) {
		r.rows = append(r.rows, cp)
	} else {
		copy(r.rows, r.rows[1:])
		r.rows[len(r.rows)-1] = cp
	}
	r.count++
}

// Rows returns a copy of the buffered subgroups in temporal order from
// oldest to most recent
func (r *Recorder) Rows() [][]float64 {
	out := make([][]float64, len(r.rows))
	for i, row := range r.rows {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Count returns the total number of subgroups recorded
func (r *Recorder) Count() int {
	return r.count
}

// Capacity returns the buffer size
func (r *Recorder) Capacity() int {
	return cap(r.rows)
}

// Reset discards all buffered subgroups
func (r *Recorder) Reset() {
	r.rows = r.rows[:0]
	r.count = 0
}
