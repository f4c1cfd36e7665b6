package codec

import (
	"sync"

	"github.com/cocosip/go-entis-codec/entis/common"
)

// Registry manages the available entropy front-ends
type Registry struct {
	mu        sync.RWMutex
	frontEnds map[common.Architecture]*FrontEnd
}

var defaultRegistry = NewRegistry()

func init() {
	_ = Register(&FrontEnd{
		Architecture: common.RunLengthGamma,
		Name:         "eri-gamma",
		New:          common.NewGammaFrontEnd,
	})
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		frontEnds: make(map[common.Architecture]*FrontEnd),
	}
}

// Register registers a front-end in the default registry
func Register(fe *FrontEnd) error {
	return defaultRegistry.Register(fe)
}

// Get retrieves a front-end from the default registry
func Get(arch common.Architecture) (*FrontEnd, error) {
	return defaultRegistry.Get(arch)
}

// List returns all front-ends in the default registry
func List() []*FrontEnd {
	return defaultRegistry.List()
}

// Register registers a front-end, replacing any previous one for the same architecture
func (r *Registry) Register(fe *FrontEnd) error {
	if fe == nil || fe.New == nil {
		return ErrInvalidFrontEnd
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.frontEnds[fe.Architecture] = fe
	return nil
}

// Get retrieves the front-end for an architecture
func (r *Registry) Get(arch common.Architecture) (*FrontEnd, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fe, ok := r.frontEnds[arch]
	if !ok {
		return nil, ErrFrontEndNotFound
	}
	return fe, nil
}

// List returns all registered front-ends
func (r *Registry) List() []*FrontEnd {
	r.mu.RLock()
	defer r.mu.RUnlock()

	frontEnds := make([]*FrontEnd, 0, len(r.frontEnds))
	for _, fe := range r.frontEnds {
		frontEnds = append(frontEnds, fe)
	}
	return frontEnds
}
