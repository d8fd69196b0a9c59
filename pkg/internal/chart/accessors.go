package chart

import "github.com/algoscope/algoscope/pkg/internal/types"

// GetComponentMetadata returns the component metadata.
func (c *Chart) GetComponentMetadata() types.ComponentMetadata {
	c.metadataLock.Lock()
	defer c.metadataLock.Unlock()
	return c.componentMetadata
}

// SetComponentMetadata overrides the component name and id. The component
// type is fixed at construction.
func (c *Chart) SetComponentMetadata(name string, id string) {
	c.metadataLock.Lock()
	defer c.metadataLock.Unlock()
	c.componentMetadata.Name = name
	c.componentMetadata.ID = id
}

// SetOutputDir sets the directory charts are written into. The directory
// must already exist; an empty dir keeps the current one.
func (c *Chart) SetOutputDir(dir string) {
	if dir == "" {
		return
	}
	c.configLock.Lock()
	defer c.configLock.Unlock()
	c.outputDir = dir
}

// GetOutputDir returns the chart output directory.
func (c *Chart) GetOutputDir() string {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	return c.outputDir
}

// SetSortingSample replaces the sorting measurements. Series lengths are
// checked at render time.
func (c *Chart) SetSortingSample(s types.SortingSample) {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	c.sorting = s
}

// SetSearchSample replaces the search measurements.
func (c *Chart) SetSearchSample(s types.SearchSample) {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	c.search = s
}

// SetFibonacciSample replaces the fibonacci measurements.
func (c *Chart) SetFibonacciSample(s types.FibonacciSample) {
	c.configLock.Lock()
	defer c.configLock.Unlock()
	c.fibonacci = s
}
