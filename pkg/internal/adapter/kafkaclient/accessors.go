package kafkaclient

import "github.com/algoscope/algoscope/pkg/internal/types"

// GetComponentMetadata returns the adapter metadata.
func (p *Publisher) GetComponentMetadata() types.ComponentMetadata {
	p.metadataLock.Lock()
	defer p.metadataLock.Unlock()
	return p.componentMetadata
}

// SetComponentMetadata overrides the adapter name and id. The component
// type is fixed at construction.
func (p *Publisher) SetComponentMetadata(name string, id string) {
	p.metadataLock.Lock()
	defer p.metadataLock.Unlock()
	p.componentMetadata.Name = name
	p.componentMetadata.ID = id
}
