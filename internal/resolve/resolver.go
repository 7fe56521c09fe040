package resolve

import (
	"fmt"
	"strings"
	"sync"

	"utilcode/internal/types"
	"utilcode/internal/value"
)

// Config controls how a Resolver finds and accesses members.
type Config struct {
	// Loader resolves runtime types of arguments and results.
	Loader types.Loader
	// Override makes members of every visibility eligible and allows
	// assignment to final fields. When false only public members are
	// visible and final fields reject assignment.
	Override bool
}

// DefaultConfig uses the system registry with access override enabled.
func DefaultConfig() Config {
	return Config{Loader: types.System(), Override: true}
}

// Resolver selects constructors, methods and fields for a given argument
// shape and invokes them. It is safe for concurrent use.
type Resolver struct {
	loader   types.Loader
	override bool

	mu    sync.RWMutex
	cache map[cacheKey]types.Member
}

type cacheKey struct {
	start  *types.TypeDescriptor
	static bool
	name   string

	// actuals by descriptor identity; a child registry may reuse a name.
	actuals string
}

func actualsKey(actuals []*types.TypeDescriptor) string {
	var b strings.Builder
	for _, a := range actuals {
		fmt.Fprintf(&b, "%p;", a)
	}
	return b.String()
}

// New creates a Resolver. A nil Loader falls back to the system registry.
func New(cfg Config) *Resolver {
	if cfg.Loader == nil {
		cfg.Loader = types.System()
	}
	return &Resolver{
		loader:   cfg.Loader,
		override: cfg.Override,
		cache:    make(map[cacheKey]types.Member),
	}
}

// Loader returns the loader used for runtime type lookups.
func (r *Resolver) Loader() types.Loader { return r.loader }

// Override reports whether access override is enabled.
func (r *Resolver) Override() bool { return r.override }

// TypesOf returns the runtime descriptor of each argument (nil for absent values).
func (r *Resolver) TypesOf(args []any) []*types.TypeDescriptor {
	out := make([]*types.TypeDescriptor, len(args))
	for i, a := range args {
		out[i] = r.loader.TypeOf(a)
	}
	return out
}

func (r *Resolver) eligible(v types.Visibility) bool {
	return r.override || v == types.Public
}

// Candidate is a member under consideration together with its per-parameter
// compatibility ranks.
type Candidate struct {
	Member    types.Member
	Declaring *types.TypeDescriptor
	Ranks     []Rank
	Score     int
}

// ResolveConstructor selects the constructor of t that best matches actuals.
func (r *Resolver) ResolveConstructor(t *types.TypeDescriptor, actuals []*types.TypeDescriptor) (*types.Constructor, error) {
	key := cacheKey{start: t, static: true, name: types.ConstructorName, actuals: actualsKey(actuals)}
	if m, ok := r.cached(key); ok {
		return m.(*types.Constructor), nil
	}

	var cands []Candidate
	for _, c := range t.Constructors {
		if len(c.Params) != len(actuals) || !r.eligible(c.Visibility) {
			continue
		}
		cands = append(cands, Candidate{Member: c, Declaring: t})
	}

	best, ok := selectBest(cands, actuals)
	if !ok {
		return nil, &Error{
			Kind:      NoMatchingMember,
			Type:      t.Name,
			Member:    types.ConstructorName,
			Signature: types.FormatParams(actuals),
		}
	}
	r.store(key, best.Member)
	return best.Member.(*types.Constructor), nil
}

// ResolveMethod selects the method called name that best matches actuals.
// The search starts at start and moves up the hierarchy, stopping at the
// first level that declares a method with that name and arity. With
// static set only static methods are considered.
func (r *Resolver) ResolveMethod(start *types.TypeDescriptor, name string, actuals []*types.TypeDescriptor, static bool) (*types.Method, error) {
	key := cacheKey{start: start, static: static, name: name, actuals: actualsKey(actuals)}
	if m, ok := r.cached(key); ok {
		return m.(*types.Method), nil
	}

	var cands []Candidate
	for level := start; level != nil && len(cands) == 0; level = level.Super {
		for _, m := range level.Methods {
			if m.Name != name || len(m.Params) != len(actuals) {
				continue
			}
			if (static && !m.Static) || !r.eligible(m.Visibility) {
				continue
			}
			cands = append(cands, Candidate{Member: m, Declaring: level})
		}
	}

	best, ok := selectBest(cands, actuals)
	if !ok {
		return nil, &Error{
			Kind:      NoMatchingMember,
			Type:      start.Name,
			Member:    name,
			Signature: types.FormatParams(actuals),
		}
	}
	r.store(key, best.Member)
	return best.Member.(*types.Method), nil
}

func (r *Resolver) cached(key cacheKey) (types.Member, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.cache[key]
	return m, ok
}

func (r *Resolver) store(key cacheKey, m types.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cache[key]; !exists {
		r.cache[key] = m
	}
}

// selectBest ranks every candidate against actuals and returns the one with
// the lowest total score. Ties go to a candidate whose parameters are all at
// least as specific as every other tied candidate's, then to declaration order.
func selectBest(cands []Candidate, actuals []*types.TypeDescriptor) (Candidate, bool) {
	var viable []Candidate
	for _, c := range cands {
		params := c.Member.Parameters()
		c.Ranks = make([]Rank, len(params))
		c.Score = 0
		ok := true
		for i, p := range params {
			rank := Compatibility(p, actuals[i])
			if rank == Incompatible {
				ok = false
				break
			}
			c.Ranks[i] = rank
			c.Score += int(rank)
		}
		if ok {
			viable = append(viable, c)
		}
	}
	if len(viable) == 0 {
		return Candidate{}, false
	}

	best := viable[0].Score
	for _, c := range viable[1:] {
		if c.Score < best {
			best = c.Score
		}
	}
	var tied []Candidate
	for _, c := range viable {
		if c.Score == best {
			tied = append(tied, c)
		}
	}
	if len(tied) == 1 {
		return tied[0], true
	}
	for i, c := range tied {
		if mostSpecific(c, i, tied) {
			return c, true
		}
	}
	return tied[0], true
}

func mostSpecific(c Candidate, idx int, tied []Candidate) bool {
	params := c.Member.Parameters()
	for j, o := range tied {
		if j == idx {
			continue
		}
		for k, p := range o.Member.Parameters() {
			if !moreSpecific(params[k], p) {
				return false
			}
		}
	}
	return true
}

// Construct invokes c with args converted to its parameter types.
func (r *Resolver) Construct(c *types.Constructor, args []any) (any, error) {
	conv, err := convertArgs(c.Params, args)
	if err == nil {
		var out any
		out, err = protect(func() (any, error) { return c.New(conv) })
		if err == nil {
			return out, nil
		}
	}
	return nil, &Error{
		Kind:      InvocationFailure,
		Type:      c.Declaring().Name,
		Member:    types.ConstructorName,
		Signature: types.FormatParams(c.Params),
		Err:       err,
	}
}

// Invoke calls m on recv (ignored for static methods) with args converted to
// its parameter types. The method runs exactly as declared on its owning
// type; there is no dynamic re-dispatch.
func (r *Resolver) Invoke(m *types.Method, recv any, args []any) (any, error) {
	fail := func(err error) error {
		return &Error{
			Kind:      InvocationFailure,
			Type:      m.Declaring().Name,
			Member:    m.Name,
			Signature: types.FormatParams(m.Params),
			Err:       err,
		}
	}
	if m.Static {
		recv = nil
	} else if value.IsNil(recv) {
		return nil, fail(fmt.Errorf("instance method called without a receiver"))
	}
	conv, err := convertArgs(m.Params, args)
	if err != nil {
		return nil, fail(err)
	}
	out, err := protect(func() (any, error) { return m.Call(recv, conv) })
	if err != nil {
		return nil, fail(err)
	}
	return out, nil
}

// convertArgs widens numeric arguments to the Go type of their parameter.
func convertArgs(params []*types.TypeDescriptor, args []any) ([]any, error) {
	out := make([]any, len(args))
	for i, a := range args {
		p := params[i].Boxed()
		if p.NumericOrder == 0 {
			out[i] = a
			continue
		}
		v, err := value.Convert(a, p.GoType)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// protect runs fn and turns a panic into an error.
func protect(fn func() (any, error)) (out any, err error) {
	defer func() {
		if p := recover(); p != nil {
			out = nil
			if e, ok := p.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn()
}

// Signature renders the runtime types of args, e.g. "(lang.String, null)".
func (r *Resolver) Signature(args []any) string {
	return types.FormatParams(r.TypesOf(args))
}
