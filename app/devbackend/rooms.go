package devbackend

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hostel-portal/app/models"
)

// Rooms returns every room ordered by id.
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, 0, len(s.rooms))
	for _, id := range sortedKeys(s.rooms) {
		out = append(out, *s.rooms[id])
	}
	return out
}

// AddRoom creates an empty room.
func (s *Store) AddRoom(number string, capacity int) (models.Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return models.Room{}, badRequest("Room number is required")
	}
	if capacity <= 0 {
		return models.Room{}, badRequest("Capacity must be a positive number")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roomByNumber(number) != nil {
		return models.Room{}, conflict("Room " + number + " already exists")
	}
	r := &models.Room{ID: s.id(), RoomNumber: number, Capacity: capacity}
	s.rooms[r.ID] = r
	return *r, nil
}

func (s *Store) updateRoomCapacity(id, capacity int) error {
	if capacity <= 0 {
		return badRequest("Capacity must be a positive number")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return notFound("Room not found")
	}
	if capacity < r.CurrentOccupancy {
		return conflict("Capacity cannot be less than the current occupancy")
	}
	r.Capacity = capacity
	return nil
}

func (s *Store) deleteRoom(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return notFound("Room not found")
	}
	if r.CurrentOccupancy > 0 {
		return conflict("Cannot delete a room that has students assigned")
	}
	delete(s.rooms, id)
	return nil
}

func (s *Server) listRooms(c *fiber.Ctx) error {
	return c.JSON(s.store.Rooms())
}

func (s *Server) addRoom(c *fiber.Ctx) error {
	var req struct {
		RoomNumber string `json:"room_number"`
		Capacity   int    `json:"capacity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	if _, err := s.store.AddRoom(req.RoomNumber, req.Capacity); err != nil {
		return err
	}
	return message(c, fiber.StatusCreated, "Room added successfully")
}

func (s *Server) updateRoom(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req struct {
		Capacity int `json:"capacity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request")
	}
	if err := s.store.updateRoomCapacity(id, req.Capacity); err != nil {
		return err
	}
	return message(c, fiber.StatusOK, "Room capacity updated successfully")
}

func (s *Server) deleteRoom(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := s.store.deleteRoom(id); err != nil {
		return err
	}
	return message(c, fiber.StatusOK, "Room deleted successfully")
}
