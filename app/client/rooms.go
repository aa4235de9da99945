package client

import (
	"context"
	"io"
	"net/http"

	"hostel-portal/app/models"
)

func (c *Client) Rooms(ctx context.Context) ([]models.Room, error) {
	var list []models.Room
	err := c.get(ctx, "/rooms", &list)
	return list, err
}

func (c *Client) AddRoom(ctx context.Context, roomNumber string, capacity int) (models.Message, error) {
	return c.send(ctx, http.MethodPost, "/rooms/add", map[string]interface{}{
		"room_number": roomNumber,
		"capacity":    capacity,
	})
}

// UpdateRoomCapacity changes a room's capacity. The backend rejects a capacity
// below the current occupancy.
func (c *Client) UpdateRoomCapacity(ctx context.Context, id, capacity int) (models.Message, error) {
	return c.send(ctx, http.MethodPut, pathID("/rooms/update", id), map[string]int{
		"capacity": capacity,
	})
}

func (c *Client) DeleteRoom(ctx context.Context, id int) (models.Message, error) {
	return c.send(ctx, http.MethodDelete, pathID("/rooms/delete", id), nil)
}

func (c *Client) UploadRoomsCSV(ctx context.Context, filename string, r io.Reader) (models.Message, error) {
	return c.upload(ctx, "/rooms/upload", filename, r)
}
