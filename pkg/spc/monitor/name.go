package monitor

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-logfmt/logfmt"
)

type metadata map[string]string

// Name identifies a monitored chart.  Optional metadata distinguishes
// charts tracking the same quantity on different lines, shifts or
// machines.  Names are marshalled to a modified logfmt string, e.g.
// fill_volume[line=A shift=2]
type Name struct {
	name string
	md   metadata
}

// NewName returns a new name with the associated metadata
func NewName(name string, md map[string]string) Name {
	return Name{name: name, md: md}
}

// String marshals the name to a string representation, such as
// fill_volume[line=A shift=2]
func (n Name) String() string {
	md, err := marshalMetadata(n.md)
	if err != nil {
		md = []byte{}
	}
	return n.name + string(md)
}

// AddMetadata upserts additional metadata into the metadata map.
func (n Name) AddMetadata(md map[string]string) {
	for k, v := range md {
		n.md[k] = v
	}
}

// marshalMetadata encodes the metadata as logfmt (key, value) pairs in
// sorted key order, wrapped in brackets.
func marshalMetadata(m metadata) ([]byte, error) {
	if m == nil {
		return []byte{}, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	b.WriteString("[")
	e := logfmt.NewEncoder(&b)
	for _, k := range keys {
		if err := e.EncodeKeyval(k, m[k]); err != nil {
			return nil, fmt.Errorf("failed to encode %s=%s: %v", k, m[k], err)
		}
	}
	b.WriteString("]")
	return b.Bytes(), nil
}
