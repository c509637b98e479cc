package repositories

import (
	"sync"

	"StoreHub/models"

	"gorm.io/gorm"
)

// MockUserRepository is an in-memory UserRepository for tests. It enforces
// the same email/username uniqueness the database does, returning
// gorm.ErrDuplicatedKey so services see identical failure modes.
type MockUserRepository struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		nextID: 1,
		users:  make(map[uint]*models.User),
	}
}

func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MockUserRepository) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *MockUserRepository) UpdateAvatar(userID uint, avatarPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.AvatarPath = avatarPath
	return nil
}

// Count reports how many users exist; test helper.
func (r *MockUserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
