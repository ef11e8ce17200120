package boxfolk

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and raster metrics.
// Only populated when Viewport.debug is true.
type debugStats struct {
	transformTime time.Duration
	rasterTime    time.Duration
	presentTime   time.Duration
	raster        rasterStats
}

// debugLog prints timing and raster stats to stderr.
func (v *Viewport) debugLog(stats debugStats) {
	if !v.debug {
		return
	}
	total := stats.transformTime + stats.rasterTime + stats.presentTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[boxfolk] frame %d | transform: %v | raster: %v | present: %v | total: %v\n",
		v.frames, stats.transformTime, stats.rasterTime, stats.presentTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[boxfolk] meshes: %d | triangles: %d | culled: %d\n",
		stats.raster.meshes, stats.raster.triangles, stats.raster.culled)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func (g *Graph) debugCheckTreeDepth(id NodeID) {
	depth := 0
	for p := id; p != NoNode; p = g.nodes[p].Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[boxfolk] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, g.nodes[id].Name)
	}
}
