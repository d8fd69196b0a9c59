package bench

import "github.com/algoscope/algoscope/pkg/internal/types"

// GetComponentMetadata returns the runner's metadata.
func (r *Runner) GetComponentMetadata() types.ComponentMetadata {
	r.metadataLock.Lock()
	defer r.metadataLock.Unlock()
	return r.componentMetadata
}

// SetComponentMetadata overrides the runner's name and id. The component
// type is fixed at construction.
func (r *Runner) SetComponentMetadata(name string, id string) {
	r.metadataLock.Lock()
	defer r.metadataLock.Unlock()
	r.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: r.componentMetadata.Type}
}

// SetSizes replaces the input sizes benchmarked per algorithm. Values below
// one are dropped; empty input keeps the current grid.
func (r *Runner) SetSizes(sizes []int) {
	kept := make([]int, 0, len(sizes))
	for _, size := range sizes {
		if size > 0 {
			kept = append(kept, size)
		}
	}
	if len(kept) == 0 {
		return
	}
	r.configLock.Lock()
	r.sizes = kept
	r.configLock.Unlock()
}

// GetSizes returns a copy of the configured input sizes.
func (r *Runner) GetSizes() []int {
	r.configLock.Lock()
	defer r.configLock.Unlock()
	return append([]int(nil), r.sizes...)
}

// SetShapes replaces the input shapes. Empty input keeps the current set.
func (r *Runner) SetShapes(shapes []types.DataShape) {
	if len(shapes) == 0 {
		return
	}
	r.configLock.Lock()
	r.shapes = append([]types.DataShape(nil), shapes...)
	r.configLock.Unlock()
}

// GetShapes returns a copy of the configured input shapes.
func (r *Runner) GetShapes() []types.DataShape {
	r.configLock.Lock()
	defer r.configLock.Unlock()
	return append([]types.DataShape(nil), r.shapes...)
}

// SetRepeats sets how many times each case is measured; the fastest repeat
// is reported. Values below one are clamped to one.
func (r *Runner) SetRepeats(n int) {
	if n < 1 {
		n = 1
	}
	r.configLock.Lock()
	r.repeats = n
	r.configLock.Unlock()
}

// SetQuadraticCutoff sets the largest input size the quadratic sorts still
// run at. Larger combinations are skipped, not failed.
func (r *Runner) SetQuadraticCutoff(n int) {
	r.configLock.Lock()
	r.quadraticCutoff = n
	r.configLock.Unlock()
}

// SetSeed reseeds the input generator. Runs with the same seed and grid
// measure identical data.
func (r *Runner) SetSeed(seed int64) {
	r.configLock.Lock()
	r.seed = seed
	r.configLock.Unlock()
}

// SetRecursionDepths replaces the fibonacci arguments benchmarked by the
// recursion suite. Negative values are dropped; empty input keeps the
// current list.
func (r *Runner) SetRecursionDepths(n []int) {
	kept := make([]int, 0, len(n))
	for _, depth := range n {
		if depth >= 0 {
			kept = append(kept, depth)
		}
	}
	if len(kept) == 0 {
		return
	}
	r.configLock.Lock()
	r.recursionDepths = kept
	r.configLock.Unlock()
}
