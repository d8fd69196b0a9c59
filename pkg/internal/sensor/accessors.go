package sensor

import "github.com/algoscope/algoscope/pkg/internal/types"

// GetComponentMetadata returns the sensor metadata.
func (s *Sensor[T]) GetComponentMetadata() types.ComponentMetadata {
	s.metadataLock.Lock()
	metadata := s.componentMetadata
	s.metadataLock.Unlock()
	return metadata
}

// SetComponentMetadata overrides the sensor name and id. The component type
// is fixed at construction.
func (s *Sensor[T]) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
	s.metadataLock.Unlock()
}

// GetMeters returns a copy of configured meters.
func (s *Sensor[T]) GetMeters() []types.Meter[T] {
	return s.snapshotMeters()
}
