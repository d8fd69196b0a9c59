package s3client

import "github.com/algoscope/algoscope/pkg/internal/types"

// GetComponentMetadata returns the adapter metadata.
func (c *Client) GetComponentMetadata() types.ComponentMetadata {
	c.metadataLock.Lock()
	defer c.metadataLock.Unlock()
	return c.componentMetadata
}

// SetComponentMetadata overrides the adapter name and id. The component
// type is fixed at construction.
func (c *Client) SetComponentMetadata(name string, id string) {
	c.metadataLock.Lock()
	defer c.metadataLock.Unlock()
	c.componentMetadata.Name = name
	c.componentMetadata.ID = id
}
