// Package options provides the functional option mechanism shared by transports, the session registry and the
// gateway.
package options

// Option is implemented by any option that configures a *T at construction time.
// Example:
//
//	type sweepIntervalOpt struct{ d time.Duration }
//
//	func (o *sweepIntervalOpt) Apply(r *Registry) { r.sweepInterval = o.d }
//	func (o *sweepIntervalOpt) OptionName() string { return "sweepInterval" }
type Option[T any] interface {
	Apply(*T)
	OptionName() string
}

// ApplyOptions applies opts to t in order; later options win.
func ApplyOptions[T any](t *T, opts ...Option[T]) {
	for _, o := range opts {
		if o != nil {
			o.Apply(t)
		}
	}
}

// Func adapts a plain function to an Option.
func Func[T any](name string, fn func(*T)) Option[T] {
	return funcOpt[T]{name: name, fn: fn}
}

type funcOpt[T any] struct {
	name string
	fn   func(*T)
}

func (o funcOpt[T]) Apply(t *T) { o.fn(t) }

func (o funcOpt[T]) OptionName() string { return o.name }
