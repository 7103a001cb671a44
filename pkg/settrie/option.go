package settrie

// Options configures a SetTrie. Use DefaultOptions and Option funcs rather
// than filling it by hand.
type Options struct {
	CheckKeys    bool // panic with ErrUnsortedKey on unsorted or duplicated keys and queries
	NodeCapacity int  // number of nodes to reserve up front
}

type Option func(*Options) *Options

func DefaultOptions() *Options {
	return &Options{
		CheckKeys:    false,
		NodeCapacity: 1,
	}
}

// WithKeyCheck validates every key and query before using it. It costs a pass
// over the key on each call and is meant for debugging callers.
func WithKeyCheck() Option {
	return func(o *Options) *Options {
		o.CheckKeys = true
		return o
	}
}

// WithNodeCapacity reserves room for n nodes, useful when the number of
// distinct prefixes is known in advance.
func WithNodeCapacity(n int) Option {
	return func(o *Options) *Options {
		o.NodeCapacity = n
		return o
	}
}
