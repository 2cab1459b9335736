package animal

import (
	"errors"
	"fmt"
	"io"
)

// DefaultAge is the age assigned when no WithAge option is given.
const DefaultAge = 5

// ErrUnknownKind is returned by New for a kind outside the closed set.
var ErrUnknownKind = errors.New("unknown animal kind")

// Speaker is anything that can describe itself in one line.
type Speaker interface {
	Speak() string
}

// Animal is the base entity embedded by every variant.
type Animal struct {
	Name string
	Age  int
}

// Speak is the default description. Variants shadow it.
func (a Animal) Speak() string {
	return fmt.Sprintf("%s makes a sound.", a.Name)
}

// Option configures an Animal at construction time.
type Option func(*Animal)

// WithAge overrides DefaultAge. The value is not validated.
func WithAge(age int) Option {
	return func(a *Animal) {
		a.Age = age
	}
}

func newBase(name string, opts []Option) Animal {
	a := Animal{Name: name, Age: DefaultAge}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// NewAnimal returns a base Animal.
func NewAnimal(name string, opts ...Option) *Animal {
	a := newBase(name, opts)
	return &a
}

// Announce writes s.Speak() followed by a newline to w.
func Announce(w io.Writer, s Speaker) error {
	_, err := fmt.Fprintln(w, s.Speak())
	return err
}
