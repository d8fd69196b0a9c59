package report

import (
	"io"

	"github.com/algoscope/algoscope/pkg/internal/types"
)

// GetComponentMetadata returns the writer's metadata.
func (r *Writer) GetComponentMetadata() types.ComponentMetadata {
	r.metadataLock.Lock()
	defer r.metadataLock.Unlock()
	return r.componentMetadata
}

// SetComponentMetadata overrides the writer's name and id. The component
// type is fixed at construction.
func (r *Writer) SetComponentMetadata(name string, id string) {
	r.metadataLock.Lock()
	defer r.metadataLock.Unlock()
	r.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: r.componentMetadata.Type}
}

// SetOutput redirects report output. Nil writers are ignored.
func (r *Writer) SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	r.outLock.Lock()
	r.out = w
	r.outLock.Unlock()
}

// SetHostInfo toggles the host summary block at the top of WriteResults.
func (r *Writer) SetHostInfo(enabled bool) {
	r.outLock.Lock()
	r.showHost = enabled
	r.outLock.Unlock()
}
