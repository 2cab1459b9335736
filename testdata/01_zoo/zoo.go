package zoo

type Speaker interface {
	Speak() string
}

type Greeter interface {
	Greet(name string) string
}

type Animal struct {
	Name string
	Age  int
}

func (a Animal) Speak() string { return a.Name + " makes a sound." }

type Dog struct {
	Animal
}

func (d Dog) Speak() string { return d.Name + " says Woof!" }

type Cat struct {
	Animal
}

func (c Cat) Speak() string { return c.Name + " says Meow!" }

type Rock struct{} // no Speak, should not appear in the diagram
