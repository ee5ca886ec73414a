// Package traverse implements the parallel, level-synchronized BVTT
// traversal engine: the level-by-level breadth-first walk from a BVH's
// root to its leaves, fork-joined across tasks at every level. Each
// level's frontier is written into freshly allocated slices; buffers
// are not reused between levels.
package traverse

import (
	"fmt"
	"runtime"

	"github.com/benjaminfaber/bvhtraverse/pkg/bvherrs"
)

// Options configures a traversal call's parallelism.
type Options struct {
	NumThreads             int
	MinTraversalsPerThread int
}

// DefaultOptions returns one task per logical CPU, with a 100-pair
// minimum chunk size per task.
func DefaultOptions() Options {
	return Options{NumThreads: runtime.NumCPU(), MinTraversalsPerThread: 100}
}

// Validate checks that both fields are positive, returning
// bvherrs.ErrInvalidOptions wrapped with context otherwise.
func (o Options) Validate() error {
	if o.NumThreads <= 0 {
		return fmt.Errorf("%w: NumThreads must be positive, got %d", bvherrs.ErrInvalidOptions, o.NumThreads)
	}
	if o.MinTraversalsPerThread <= 0 {
		return fmt.Errorf("%w: MinTraversalsPerThread must be positive, got %d", bvherrs.ErrInvalidOptions, o.MinTraversalsPerThread)
	}
	return nil
}
