package hidden

type Speaker interface {
	Speak() string
}

type mouse struct{}

func (m mouse) Speak() string { return "squeak" }

type Owl struct{}

func (o Owl) Speak() string { return "hoot" }
