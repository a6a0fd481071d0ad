package dag

// Defaults for the New options; each is the single source of truth for
// its knob.
const (
	// DefaultReachabilityCache keeps the canreach sidestructure on.
	DefaultReachabilityCache = true
	// DefaultReachWithoutLink stamps each physical edge with whether its
	// target was reachable before the edge existed.
	DefaultReachWithoutLink = true
	// DefaultUserTristate keeps the per-edge ternary for internal use.
	DefaultUserTristate = false
	// DefaultConsistencyCheck leaves the self-audit off.
	DefaultConsistencyCheck = false
)

// options collects the resolved configuration of a Graph.
type options struct {
	reachabilityCache bool
	reachWithoutLink  bool
	userTristate      bool
	consistencyCheck  bool
}

// Option adjusts the configuration of New.
type Option func(*options)

// WithoutReachabilityCache drops the canreach sidestructure entirely;
// every reachability query, including the cycle check inside SetEdge,
// walks the physical graph instead. Mutations do no closure
// maintenance.
func WithoutReachabilityCache() Option {
	return func(o *options) { o.reachabilityCache = false }
}

// WithoutReachWithoutLink keeps the closure cache but stops maintaining
// the per-edge "reachable without this edge" ternary, trading cheaper
// insertions for dirtier removals.
func WithoutReachWithoutLink() Option {
	return func(o *options) { o.reachWithoutLink = false }
}

// WithUserTristate hands the per-edge ternary to the caller through
// EdgeTristate and SetEdgeTristate. The slot is shared with the
// reach-without-link bookkeeping, which is therefore turned off.
func WithUserTristate() Option {
	return func(o *options) { o.userTristate = true }
}

// WithConsistencyCheck audits the sidestructure against a full
// transitive walk before and after every mutating operation, panicking
// on any violation. Meant for tests; the audit is O(V·E).
func WithConsistencyCheck() Option {
	return func(o *options) { o.consistencyCheck = true }
}

// gatherOptions resolves defaults, applies the callers' choices and
// rejects impossible combinations.
func gatherOptions(opts ...Option) (options, error) {
	o := options{
		reachabilityCache: DefaultReachabilityCache,
		reachWithoutLink:  DefaultReachWithoutLink,
		userTristate:      DefaultUserTristate,
		consistencyCheck:  DefaultConsistencyCheck,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.userTristate && !o.reachabilityCache {
		// The user ternary lives inside the sidestructure's pair slots.
		return options{}, ErrOptionConflict
	}
	if o.userTristate {
		o.reachWithoutLink = false
	}
	if !o.reachabilityCache {
		o.reachWithoutLink = false
	}

	return o, nil
}
