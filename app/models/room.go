package models

// Room is a hostel room. The backend guarantees 0 <= CurrentOccupancy <= Capacity
// and rejects capacity decreases below the current occupancy.
type Room struct {
	ID               int    `json:"id,omitempty"`
	RoomNumber       string `json:"room_number" label:"Room Number" validate:"required"`
	Capacity         int    `json:"capacity" label:"Capacity" validate:"required,gt=0"`
	CurrentOccupancy int    `json:"current_occupancy"`
}

// RoomStatus is the display category of a room derived from its occupancy.
type RoomStatus string

const (
	RoomEmpty           RoomStatus = "Empty"
	RoomPartiallyFilled RoomStatus = "Partially Filled"
	RoomFull            RoomStatus = "Full"
)

// RoomFilterOptions lists the categorical filters on the rooms page, "All" first.
var RoomFilterOptions = []string{"All", string(RoomEmpty), string(RoomPartiallyFilled), string(RoomFull)}

// Status categorises the room: no occupants is Empty, occupancy at or above
// capacity is Full, anything else is Partially Filled.
func (r Room) Status() RoomStatus {
	switch {
	case r.CurrentOccupancy == 0:
		return RoomEmpty
	case r.CurrentOccupancy >= r.Capacity:
		return RoomFull
	default:
		return RoomPartiallyFilled
	}
}
