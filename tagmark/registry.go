package tagmark

import (
	"fmt"
	"slices"
	"strings"
)

// TagFactory creates a fresh [Tag] from the arguments of one tag occurrence.
// A returned error keeps the tag as plain text.
type TagFactory func(args *ArgumentQueue, ctx *Context) (Tag, error)

// TagResolver maps tag names to Tags. Names are passed as written in the markup.
type TagResolver interface {
	// Has reports whether name is a known tag name.
	Has(name string) bool

	// Resolve creates the Tag for name, or returns nil with no error if name is unknown.
	Resolve(name string, args *ArgumentQueue, ctx *Context) (Tag, error)
}

type matcher struct {
	match   func(name string) bool
	factory TagFactory
}

// Registry is the TagResolver backed by named factories and name matchers.
// Names are case-insensitive. It is safe for concurrent use once the registration is done.
type Registry struct {
	named    map[string]TagFactory
	matchers []matcher
}

func NewRegistry() *Registry {
	return &Registry{named: make(map[string]TagFactory)}
}

// Register binds the factory to every name. Names must match [!?#]?[a-z0-9_-]* and must be unique.
func (r *Registry) Register(factory TagFactory, names ...string) error {
	if len(names) == 0 {
		return newInvalidTagNameError("")
	}

	for _, name := range names {
		if !ValidTagName(name) {
			return newInvalidTagNameError(name)
		}
		if _, ok := r.named[name]; ok {
			return newDuplicateTagNameError(name)
		}
	}

	for _, name := range names {
		r.named[name] = factory
	}

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(factory TagFactory, names ...string) {
	if err := r.Register(factory, names...); err != nil {
		panic(err)
	}
}

// RegisterMatcher binds the factory to every name accepted by match, e.g. hex colors.
// Matchers are consulted in registration order, after the named factories.
func (r *Registry) RegisterMatcher(match func(name string) bool, factory TagFactory) {
	r.matchers = append(r.matchers, matcher{match: match, factory: factory})
}

func (r *Registry) lookup(name string) TagFactory {
	name = strings.ToLower(name)

	if f, ok := r.named[name]; ok {
		return f
	}

	for _, m := range r.matchers {
		if m.match(name) {
			return m.factory
		}
	}

	return nil
}

func (r *Registry) Has(name string) bool {
	return r.lookup(name) != nil
}

func (r *Registry) Resolve(name string, args *ArgumentQueue, ctx *Context) (Tag, error) {
	f := r.lookup(name)
	if f == nil {
		return nil, nil
	}

	tag, err := f(args, ctx)
	if err != nil {
		return nil, fmt.Errorf("tag %q: %w", name, err)
	}

	return tag, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolvers combines several TagResolvers, the first one knowing the name wins.
type Resolvers []TagResolver

func (rs Resolvers) Has(name string) bool {
	for _, r := range rs {
		if r.Has(name) {
			return true
		}
	}
	return false
}

func (rs Resolvers) Resolve(name string, args *ArgumentQueue, ctx *Context) (Tag, error) {
	for _, r := range rs {
		if r.Has(name) {
			return r.Resolve(name, args, ctx)
		}
	}
	return nil, nil
}
