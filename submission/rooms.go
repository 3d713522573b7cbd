package submission

import "strings"

// Floor identifies one storey of the house.
type Floor int

const (
	Ground Floor = iota
	Upper
	Basement
)

var floorNames = [...]string{
	Ground:   "Erdgeschoss",
	Upper:    "Obergeschoss",
	Basement: "Untergeschoss",
}

// Name returns the German display name of the floor.
func (f Floor) Name() string {
	if f < 0 || int(f) >= len(floorNames) {
		return ""
	}
	return floorNames[f]
}

// Room is one room descriptor. Rooms carry no area; the floor plan derives an
// approximate figure from its own cell geometry.
type Room struct {
	Name    string `json:"name"`
	Details string `json:"details,omitempty"`
}

// Rooms holds the ordered room lists per floor. A JSON null or a missing
// floor decodes to an empty list.
type Rooms struct {
	Ground   []Room `json:"erdgeschoss"`
	Upper    []Room `json:"obergeschoss"`
	Basement []Room `json:"untergeschoss"`
}

// FloorRooms is one floor together with its rooms.
type FloorRooms struct {
	Floor Floor
	Rooms []Room
}

// On returns the rooms of floor f.
func (r Rooms) On(f Floor) []Room {
	switch f {
	case Ground:
		return r.Ground
	case Upper:
		return r.Upper
	case Basement:
		return r.Basement
	}
	return nil
}

// Floors returns the floors that hold at least one room, in ground, upper,
// basement order.
func (r Rooms) Floors() []FloorRooms {
	var out []FloorRooms
	for _, f := range []Floor{Ground, Upper, Basement} {
		if rooms := r.On(f); len(rooms) > 0 {
			out = append(out, FloorRooms{Floor: f, Rooms: rooms})
		}
	}
	return out
}

// Any reports whether any floor holds a room.
func (r Rooms) Any() bool {
	return len(r.Floors()) > 0
}

// HasDetails reports whether the room carries non-blank free text.
func (rm Room) HasDetails() bool {
	return strings.TrimSpace(rm.Details) != ""
}
