package parrot

type Speaker interface {
	Speak() string
}

type Parrot struct {
	Phrase string
}

func (p *Parrot) Speak() string { return p.Phrase }
