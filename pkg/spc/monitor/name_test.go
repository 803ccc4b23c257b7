package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameString(t *testing.T) {
	tt := []struct {
		Name     string
		Metric   string
		Metadata map[string]string
		Expect   string
	}{
		{Name: "no metadata", Metric: "fill_volume", Metadata: nil, Expect: "fill_volume"},
		{Name: "one key", Metric: "fill_volume", Metadata: map[string]string{"line": "A"}, Expect: "fill_volume[line=A]"},
		{Name: "sorted keys", Metric: "fill_volume", Metadata: map[string]string{"shift": "2", "line": "A"}, Expect: "fill_volume[line=A shift=2]"},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			n := NewName(tc.Metric, tc.Metadata)
			assert.Equal(t, tc.Expect, n.String())
		})
	}
}

func TestNameAddMetadata(t *testing.T) {
	n := NewName("torque", map[string]string{"line": "A"})
	n.AddMetadata(map[string]string{"shift": "1"})
	assert.Equal(t, "torque[line=A shift=1]", n.String())

	n.AddMetadata(map[string]string{"line": "B"})
	assert.Equal(t, "torque[line=B shift=1]", n.String())
}
