package fixture

import (
	"errors"
	"fmt"
)

var (
	ErrE           = errors.New("E")
	ErrInvalidISAN = errors.New("invalid ISAN")
)

// Tes selects whether a Me method fails.
type Tes struct {
	Fail bool
}

func (t Tes) String() string {
	return fmt.Sprintf("Tes(%t)", t.Fail)
}

type Me struct {
	Value int
}

func (m Me) String() string {
	return fmt.Sprintf("Me(%d)", m.Value)
}

type Buffer struct{}

type Person struct {
	Name     string
	Awake    bool
	Responds bool
}

func (p *Person) String() string {
	return "Person(" + p.Name + ")"
}

type Status int

const (
	Alive Status = iota
	Dead
	Unknown
)

func (s Status) String() string {
	switch s {
	case Alive:
		return "Alive"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// DivisibleError reports a number divisible by a forbidden divisor.
type DivisibleError struct {
	N  uint32
	By uint32
}

func (e *DivisibleError) Error() string {
	return fmt.Sprintf("%d is divisible by %d", e.N, e.By)
}
