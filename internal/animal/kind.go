package animal

import "fmt"

// Kind names one of the variants.
type Kind string

const (
	KindDog  Kind = "dog"
	KindCat  Kind = "cat"
	KindBird Kind = "bird"
)

// Kinds returns every variant kind in driver order.
func Kinds() []Kind {
	return []Kind{KindDog, KindCat, KindBird}
}

// New constructs the variant named by kind.
func New(kind Kind, name string, opts ...Option) (Speaker, error) {
	switch kind {
	case KindDog:
		return NewDog(name, opts...), nil
	case KindCat:
		return NewCat(name, opts...), nil
	case KindBird:
		return NewBird(name, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
