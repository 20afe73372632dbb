package octree

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
)

// Stats summarizes the shape of a built octree.
type Stats struct {
	Probes        int
	Nodes         int
	Leaves        int
	EmptyLeaves   int
	MaxLeafDepth  int
	// MeanLeafCount and MaxLeafCount only consider leaves holding at least one probe.
	MeanLeafCount float64
	MaxLeafCount  float64
}

// Stats walks the whole tree and reports its shape.
func (o *ProbeOctree) Stats() (Stats, error) {
	if o.state != built {
		return Stats{}, ErrNotBuilt
	}
	s := Stats{Probes: o.probes.Size()}
	var counts stats.Float64Data
	walk(o.root, func(n *Node) bool {
		s.Nodes++
		if !n.IsLeaf() {
			return true
		}
		s.Leaves++
		if n.depth > s.MaxLeafDepth {
			s.MaxLeafDepth = n.depth
		}
		if len(n.indices) == 0 {
			s.EmptyLeaves++
			return true
		}
		counts = append(counts, float64(len(n.indices)))
		return true
	})

	// a built tree always holds at least one probe, so counts is never empty
	var err error
	if s.MeanLeafCount, err = counts.Mean(); err != nil {
		return Stats{}, err
	}
	if s.MaxLeafCount, err = counts.Max(); err != nil {
		return Stats{}, err
	}
	return s, nil
}

// String renders the stats as a two column table.
func (s Stats) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Stat", "Value"})
	t.AppendRows([]table.Row{
		{"Probes", s.Probes},
		{"Nodes", s.Nodes},
		{"Leaves", s.Leaves},
		{"Empty leaves", s.EmptyLeaves},
		{"Max leaf depth", s.MaxLeafDepth},
		{"Mean probes per non-empty leaf", fmt.Sprintf("%.2f", s.MeanLeafCount)},
		{"Max probes per non-empty leaf", fmt.Sprintf("%.0f", s.MaxLeafCount)},
	})
	return t.Render()
}
