package dispatch

// Bundle is a pre-configured set of related method handlers.
type Bundle[T any] interface {
	// Handlers returns a map of method names to handlers.
	Handlers() map[string]Handler[T]
}

// staticBundle implements Bundle with a fixed set of handlers.
type staticBundle[T any] struct {
	handlers map[string]Handler[T]
}

func (b *staticBundle[T]) Handlers() map[string]Handler[T] {
	return b.handlers
}

// compositeBundle combines multiple bundles into one.
type compositeBundle[T any] struct {
	bundles []Bundle[T]
}

func (b *compositeBundle[T]) Handlers() map[string]Handler[T] {
	result := make(map[string]Handler[T])
	for _, bundle := range b.bundles {
		for name, handler := range bundle.Handlers() {
			result[name] = handler
		}
	}
	return result
}

// CombineBundles merges bundles into one. Later bundles override earlier ones.
func CombineBundles[T any](bundles ...Bundle[T]) Bundle[T] {
	return &compositeBundle[T]{bundles: bundles}
}
