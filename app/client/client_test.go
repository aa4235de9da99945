package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-portal/app/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, opts...)
}

func TestRoomsDecodesList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rooms", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"room_number":"101","capacity":4,"current_occupancy":2}]`)
	})

	rooms, err := c.Rooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, models.RoomPartiallyFilled, rooms[0].Status())
}

func TestEmptyListIsNotAnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})

	students, err := c.Students(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestServerMessageIsVerbatim(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ctype  string
		status int
		want   string
	}{
		{"message field", `{"message":"Room is at full capacity"}`, "application/json", http.StatusConflict, "Room is at full capacity"},
		{"error field", `{"error":"Student not found"}`, "application/json", http.StatusNotFound, "Student not found"},
		{"plain text", "Bad roll number\n", "text/plain; charset=utf-8", http.StatusBadRequest, "Bad roll number"},
		{"html page", "<html><body>oops</body></html>", "text/html", http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.ctype)
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.AddRoom(context.Background(), "101", 4)
			require.Error(t, err)
			e, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, KindServer, e.Kind)
			assert.Equal(t, tt.status, e.Status)
			assert.Equal(t, tt.want, e.Message)
			if tt.want == "" {
				assert.Equal(t, "Failed to add room.", UserMessage(err, "Failed to add room."))
			} else {
				assert.Equal(t, tt.want, UserMessage(err, "Failed to add room."))
			}
		})
	}
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := New(srv.URL).Complaints(context.Background())
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, e.Kind)
	assert.Equal(t, DefaultMessage, UserMessage(err, ""))
}

func TestTimeout(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}, WithTimeout(50*time.Millisecond))

	_, err := c.Outpasses(context.Background())
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTimeout, e.Kind)
}

func TestDecodeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"not":"a list"}`)
	})

	_, err := c.Rooms(context.Background())
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindDecode, e.Kind)
}

func TestLoginCapturesCookiesAndSendsThem(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "warden", body["username"])
		assert.Equal(t, "secret", body["password"])
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc", HttpOnly: true})
		io.WriteString(w, `{"message":"Login successful"}`)
	})
	mux.HandleFunc("/admin/profile", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("token")
		if err != nil || ck.Value != "abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		io.WriteString(w, `{"id":1,"username":"warden"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	cred, err := c.LoginAdmin(context.Background(), "warden", "secret")
	require.NoError(t, err)
	assert.Equal(t, Credential{"token": "abc"}, cred)

	_, err = c.AdminProfile(context.Background())
	assert.True(t, IsUnauthorized(err))

	p, err := c.As(cred).AdminProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "warden", p.DisplayName())
}

func TestStudentLoginBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/student/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "21CS001", body["roll_no"])
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Invalid credentials"}`)
	})

	_, err := c.LoginStudent(context.Background(), "21CS001", "bad")
	assert.Equal(t, "Invalid credentials", UserMessage(err, ""))
}

func TestMutationWithEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/students/delete/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	msg, err := c.DeleteStudent(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, msg.Message)
}

func TestUpdateComplaintStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/complaints/update/3", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "In Progress", body["status"])
		io.WriteString(w, `{"message":"Status updated"}`)
	})

	msg, err := c.UpdateComplaintStatus(context.Background(), 3, models.ComplaintInProgress)
	require.NoError(t, err)
	assert.Equal(t, "Status updated", msg.Message)

	_, err = c.UpdateComplaintStatus(context.Background(), 3, "Closed")
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, e.Kind)
}

func TestOutpassStatusMustBeTerminal(t *testing.T) {
	c := New("http://127.0.0.1:0")
	_, err := c.UpdateOutpassStatus(context.Background(), 1, models.OutpassPending)
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, e.Kind)
}

func TestUploadSendsMultipartFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms/upload", r.URL.Path)
		f, hdr, err := r.FormFile(UploadField)
		require.NoError(t, err)
		defer f.Close()
		raw, _ := io.ReadAll(f)
		assert.Equal(t, "rooms.csv", hdr.Filename)
		assert.Equal(t, "room_number,capacity\n101,4\n", string(raw))
		io.WriteString(w, `{"message":"1 rooms imported"}`)
	})

	msg, err := c.UploadRoomsCSV(context.Background(), "/tmp/rooms.csv", strings.NewReader("room_number,capacity\n101,4\n"))
	require.NoError(t, err)
	assert.Equal(t, "1 rooms imported", msg.Message)
}

func TestAnnouncementsPinFeeNotices(t *testing.T) {
	notice := models.EncodeFeeNotice(models.FeeNotice{
		Link:      "https://pay.example.edu",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		Body:      "Pay the mess fee.",
	})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		list := []models.Announcement{
			{ID: 1, Title: "Water outage", Content: "No water on Sunday."},
			{ID: 2, Title: "Mess fee", Content: notice},
		}
		json.NewEncoder(w).Encode(list)
	})

	list, err := c.Announcements(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].ID)
	require.True(t, list[0].Pinned())
	assert.Equal(t, "Mess fee", list[0].Notice.Title)
	assert.Equal(t, "Pay the mess fee.", list[0].Text())
	assert.False(t, list[1].Pinned())
}
