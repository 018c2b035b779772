package flow

import (
	"sort"

	"github.com/DennisOSRM/toolbox-rs-sub000/core"
)

// BuildResidual turns a forward edge list into a residual graph: every
// forward edge gets a zero-capacity reverse companion, parallel edges
// (after reversal) are merged by summing their capacities, and the result
// is handed to core.NewStaticGraph. The resulting graph guarantees that
// (u, v) is present iff (v, u) is present, each pair exactly once.
func BuildResidual(edges []core.InputEdge[ResidualCapacity]) (*core.StaticGraph[ResidualCapacity], error) {
	if len(edges) == 0 {
		return nil, ErrEmptyEdgeList
	}

	doubled := make([]core.InputEdge[ResidualCapacity], 0, len(edges)*2)
	doubled = append(doubled, edges...)
	for _, e := range edges {
		doubled = append(doubled, core.InputEdge[ResidualCapacity]{
			Source: e.Target,
			Target: e.Source,
			Data:   ResidualCapacity{Capacity: 0},
		})
	}

	sort.SliceStable(doubled, func(i, j int) bool {
		if doubled[i].Source != doubled[j].Source {
			return doubled[i].Source < doubled[j].Source
		}
		return doubled[i].Target < doubled[j].Target
	})

	merged := doubled[:0:0]
	for _, e := range doubled {
		if n := len(merged); n > 0 && merged[n-1].IsParallelTo(e) {
			merged[n-1].Data.Capacity += e.Data.Capacity
			continue
		}
		merged = append(merged, e)
	}

	return core.NewStaticGraph(merged)
}
