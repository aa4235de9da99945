package devbackend

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hostel-portal/app/models"
)

type account struct {
	role     string
	id       int
	username string
}

const (
	roleAdmin   = "admin"
	roleStudent = "student"
)

type adminRecord struct {
	profile models.AdminProfile
	hash    []byte
}

type studentRecord struct {
	student models.Student
	hash    []byte
}

// Store is the backend's in-memory state. All methods are safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	cost int
	now  func() time.Time

	admins        map[string]*adminRecord
	students      map[int]*studentRecord
	rooms         map[int]*models.Room
	complaints    map[int]*complaintRecord
	fees          []models.FeePayment
	announcements []models.Announcement
	outpasses     map[int]*outpassRecord
	sessions      map[string]account

	nextID int
}

type complaintRecord struct {
	models.Complaint
	studentID int
}

type outpassRecord struct {
	models.Outpass
	studentID int
}

// NewStore returns an empty store hashing passwords with the given bcrypt cost.
func NewStore(cost int) *Store {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Store{
		cost:       cost,
		now:        time.Now,
		admins:     map[string]*adminRecord{},
		students:   map[int]*studentRecord{},
		rooms:      map[int]*models.Room{},
		complaints: map[int]*complaintRecord{},
		outpasses:  map[int]*outpassRecord{},
		sessions:   map[string]account{},
	}
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

func (s *Store) hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), s.cost)
}

func checkPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// AddAdmin registers an administrator account.
func (s *Store) AddAdmin(username, password, name, email string) error {
	h, err := s.hash(password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins[username] = &adminRecord{
		profile: models.AdminProfile{ID: s.id(), Username: username, Name: name, Email: email},
		hash:    h,
	}
	return nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
