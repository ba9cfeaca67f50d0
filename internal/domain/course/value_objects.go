package course

import (
	"math"
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 100

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Capacity struct {
	value int
}

func NewCapacity(v int) (Capacity, error) {
	if v < 0 || v > math.MaxInt32 {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{value: v}, nil
}

func (c Capacity) Value() int { return c.value }
