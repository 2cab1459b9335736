package animal

import "fmt"

// Dog barks.
type Dog struct {
	Animal
}

// NewDog returns a Dog with the given name.
func NewDog(name string, opts ...Option) *Dog {
	return &Dog{Animal: newBase(name, opts)}
}

func (d Dog) Speak() string {
	return fmt.Sprintf("%s says Woof!", d.Name)
}

// Cat meows.
type Cat struct {
	Animal
}

// NewCat returns a Cat with the given name.
func NewCat(name string, opts ...Option) *Cat {
	return &Cat{Animal: newBase(name, opts)}
}

func (c Cat) Speak() string {
	return fmt.Sprintf("%s says Meow!", c.Name)
}

// Bird tweets and, unlike the others, reports its age.
type Bird struct {
	Animal
}

// NewBird returns a Bird with the given name.
func NewBird(name string, opts ...Option) *Bird {
	return &Bird{Animal: newBase(name, opts)}
}

func (b Bird) Speak() string {
	return fmt.Sprintf("%s says Tweet!, and is %d years old", b.Name, b.Age)
}
