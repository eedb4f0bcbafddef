package codec

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps transfer syntax UIDs and codec names to encoders. The
// baseline JFIF encoder adds itself to the package registry when
// jpeg/baseline is imported.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Codec
	byUID  map[string]Codec
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Codec),
		byUID:  make(map[string]Codec),
	}
}

// Register adds codec to the package registry
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get looks up an encoder in the package registry
func Get(nameOrUID string) (Codec, error) {
	return defaultRegistry.Get(nameOrUID)
}

// List returns the encoders of the package registry ordered by name
func List() []Codec {
	return defaultRegistry.List()
}

// Register adds codec under its name and its UID. A later codec with the same
// name or UID replaces the earlier one.
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byUID[codec.UID()]; ok && old.Name() != codec.Name() {
		delete(r.byName, old.Name())
	}
	if old, ok := r.byName[codec.Name()]; ok && old.UID() != codec.UID() {
		delete(r.byUID, old.UID())
	}
	r.byName[codec.Name()] = codec
	r.byUID[codec.UID()] = codec
}

// Get finds the codec registered for a transfer syntax UID or, failing that,
// under a name such as "jpeg-baseline-jfif".
func (r *Registry) Get(nameOrUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byUID[nameOrUID]; ok {
		return c, nil
	}
	if c, ok := r.byName[nameOrUID]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrCodecNotFound, nameOrUID)
}

// List returns every registered codec once, ordered by name
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, 0, len(r.byName))
	for _, c := range r.byName {
		codecs = append(codecs, c)
	}
	sort.Slice(codecs, func(i, j int) bool { return codecs[i].Name() < codecs[j].Name() })
	return codecs
}
