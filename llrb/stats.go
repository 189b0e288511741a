package llrb

import "fmt"

import "github.com/bnclabs/llrbset/lib"
import humanize "github.com/dustin/go-humanize"

type llrbstats struct {
	n_count      int64 // number of keys in the tree
	n_inserts    int64
	n_duplicates int64
	n_deletes    int64
	n_misses     int64
	n_lookups    int64
	n_nodes      int64 // freshly allocated nodes
	n_reuses     int64 // nodes served from node pool
	n_frees      int64
}

// Stats return a map of counters and histograms maintained by the tree.
func (llrb *LLRB) Stats() map[string]interface{} {
	stats := llrb.stattree(map[string]interface{}{})
	stats["h_insertdepth"] = llrb.h_insertdepth.Fullstats()
	return stats
}

// Fullstats return Stats() along with statistics gathered by walking
// the entire tree, cost is proportional to the number of keys.
func (llrb *LLRB) Fullstats() map[string]interface{} {
	stats := llrb.Stats()

	h_height := lib.NewhistorgramInt64(1, 256, 1)
	llrb.heightStats(llrb.root, 1 /*depth*/, h_height)
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = countblacks(llrb.root)
	stats["node.memory"] = llrb.n_count * nodesize
	stats["node.pooled"] = int64(len(llrb.nodepool))

	if x := h_height.Samples(); x != llrb.n_count {
		fmsg := "expected h_height.samples:%v to be same as llrb.Count():%v"
		panic(fmt.Errorf(fmsg, x, llrb.n_count))
	}
	return stats
}

// Log statistics using golog, logging has to be enabled via
// LogComponents().
func (llrb *LLRB) Log() {
	stats := llrb.Fullstats()

	count := humanize.Comma(llrb.n_count)
	mem := humanize.Bytes(uint64(stats["node.memory"].(int64)))
	h_height := stats["h_height"].(map[string]interface{})
	fmsg := "%v keys %v height %v blacks %v memory %v\n"
	infof(fmsg, llrb.logprefix, count, h_height["max"], stats["n_blacks"], mem)

	infof("%v stats %v\n", llrb.logprefix, lib.Prettystats(stats, false))
}

// tree statistics -
func (llrb *LLRB) stattree(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = llrb.n_count
	stats["n_inserts"] = llrb.n_inserts
	stats["n_duplicates"] = llrb.n_duplicates
	stats["n_deletes"] = llrb.n_deletes
	stats["n_misses"] = llrb.n_misses
	stats["n_lookups"] = llrb.n_lookups
	stats["n_nodes"] = llrb.n_nodes
	stats["n_reuses"] = llrb.n_reuses
	stats["n_frees"] = llrb.n_frees
	return stats
}

func (llrb *LLRB) heightStats(nd *Llrbnode, d int64, h *lib.HistogramInt64) {
	if nd == nil {
		return
	}
	h.Add(d)
	llrb.heightStats(nd.left, d+1, h)
	llrb.heightStats(nd.right, d+1, h)
}

// black links along the left spine, same for every path in a
// balanced tree.
func countblacks(nd *Llrbnode) (blacks int64) {
	for ; nd != nil; nd = nd.left {
		if nd.isblack() {
			blacks++
		}
	}
	return blacks
}
