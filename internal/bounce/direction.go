package bounce

import (
	"fmt"
	"strings"
)

// Direction is one of the four diagonal unit vectors the logo travels along.
type Direction uint8

const (
	LeftUp Direction = iota
	LeftDown
	RightUp
	RightDown
)

// Directions lists every direction, in declaration order.
var Directions = [...]Direction{LeftUp, LeftDown, RightUp, RightDown}

var directionDeltas = [...][2]int{
	LeftUp:    {-1, -1},
	LeftDown:  {-1, 1},
	RightUp:   {1, -1},
	RightDown: {1, 1},
}

var directionNames = [...]string{
	LeftUp:    "left-up",
	LeftDown:  "left-down",
	RightUp:   "right-up",
	RightDown: "right-down",
}

// Delta returns the (column, row) step for the direction.
func (d Direction) Delta() (dx, dy int) {
	v := directionDeltas[d&3]
	return v[0], v[1]
}

// InverseHorizontal flips the column component.
func (d Direction) InverseHorizontal() Direction {
	switch d {
	case LeftUp:
		return RightUp
	case LeftDown:
		return RightDown
	case RightUp:
		return LeftUp
	default:
		return LeftDown
	}
}

// InverseVertical flips the row component.
func (d Direction) InverseVertical() Direction {
	switch d {
	case LeftUp:
		return LeftDown
	case LeftDown:
		return LeftUp
	case RightUp:
		return RightDown
	default:
		return RightUp
	}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection accepts the names produced by String.
func ParseDirection(name string) (Direction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range Directions {
		if directionNames[d] == name {
			return d, nil
		}
	}
	return RightDown, fmt.Errorf("bounce: unknown direction %q", name)
}
