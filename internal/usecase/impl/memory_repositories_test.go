package impl

import (
	"context"
	"slices"
	"sync"
	"time"

	"style/internal/domain/entity"
	domainerrors "style/internal/domain/errors"
	"style/internal/domain/repository"
	"style/internal/domain/service"

	"github.com/google/uuid"
)

// memoryStore is a map-backed stand-in for postgres with the same uniqueness rules.
type memoryStore struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*entity.User
	preferences  map[uuid.UUID]*entity.Preference
	combinations map[uuid.UUID]*entity.Combination
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:        map[uuid.UUID]*entity.User{},
		preferences:  map[uuid.UUID]*entity.Preference{},
		combinations: map[uuid.UUID]*entity.Combination{},
	}
}

func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) NewUserRepository() repository.UserRepository {
	return memoryUsers{s}
}

func (s *memoryStore) NewPreferenceRepository() repository.PreferenceRepository {
	return memoryPreferences{s}
}

func (s *memoryStore) NewCombinationRepository() repository.CombinationRepository {
	return memoryCombinations{s}
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) find(match func(*entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if match(u) {
			copied := *u

			return &copied, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

func (r memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r memoryUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r memoryUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r memoryUsers) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domainerrors.ErrEmailAlreadyExists
		}
		if u.Username == user.Username {
			return domainerrors.ErrUsernameAlreadyExists
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.s.users[user.ID] = &copied

	return nil
}

func (r memoryUsers) Update(_ context.Context, id uuid.UUID, update entity.UserUpdate) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.ProfileImageURL != nil {
		url := *update.ProfileImageURL
		u.ProfileImageURL = &url
	}
	copied := *u

	return &copied, nil
}

func (r memoryUsers) ExistsByProfileImageURL(_ context.Context, url string) (bool, error) {
	_, err := r.find(func(u *entity.User) bool { return u.ProfileImageURL != nil && *u.ProfileImageURL == url })

	return err == nil, nil
}

type memoryPreferences struct{ s *memoryStore }

func (r memoryPreferences) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Preference, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.preferences[userID]
	if !ok {
		return nil, domainerrors.ErrPreferencesNotFound
	}
	copied := *p

	return &copied, nil
}

func (r memoryPreferences) Upsert(_ context.Context, userID uuid.UUID, update entity.PreferenceUpdate) (*entity.Preference, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.preferences[userID]
	if !ok {
		p = &entity.Preference{ID: uuid.New(), UserID: userID}
		r.s.preferences[userID] = p
	}
	update.Apply(p)
	copied := *p

	return &copied, nil
}

func (r memoryPreferences) Update(_ context.Context, userID uuid.UUID, update entity.PreferenceUpdate) (*entity.Preference, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.preferences[userID]
	if !ok {
		return nil, domainerrors.ErrPreferencesNotFound
	}
	update.Apply(p)
	copied := *p

	return &copied, nil
}

type memoryCombinations struct{ s *memoryStore }

func (r memoryCombinations) Create(_ context.Context, combination *entity.Combination) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	combination.ID = uuid.New()
	combination.CreatedAt = time.Now()
	copied := *combination
	r.s.combinations[combination.ID] = &copied

	return nil
}

func (r memoryCombinations) FindByID(_ context.Context, id uuid.UUID) (*entity.Combination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.combinations[id]
	if !ok {
		return nil, domainerrors.ErrCombinationNotFound
	}
	copied := *c

	return &copied, nil
}

func (r memoryCombinations) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Combination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []*entity.Combination
	for _, c := range r.s.combinations {
		if c.UserID == userID {
			copied := *c
			out = append(out, &copied)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Combination) int { return b.CreatedAt.Compare(a.CreatedAt) })

	return out, nil
}

func (r memoryCombinations) UpdateImages(_ context.Context, id uuid.UUID, images entity.CombinationImages) (*entity.Combination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.combinations[id]
	if !ok {
		return nil, domainerrors.ErrCombinationNotFound
	}
	if images.UpperImageURL != "" {
		c.UpperImageURL = images.UpperImageURL
	}
	if images.LowerImageURL != "" {
		c.LowerImageURL = images.LowerImageURL
	}
	copied := *c

	return &copied, nil
}

func (r memoryCombinations) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.combinations, id)

	return nil
}

func (r memoryCombinations) ExistsByImageURL(_ context.Context, url string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.combinations {
		if c.UpperImageURL == url || c.LowerImageURL == url {
			return true, nil
		}
	}

	return false, nil
}

func (s *memoryStore) combinationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.combinations)
}

// recordingPublisher keeps announced orphans for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.OrphanedImageEvent
}

func (p *recordingPublisher) PublishOrphanedImage(_ context.Context, event *service.OrphanedImageEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}
