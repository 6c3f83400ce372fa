// Package repotest provides in-memory repositories for service and controller tests.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/app/repositories"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

// Store is a goroutine-safe in-memory database shared by the fake repositories.
// It mirrors the cascading deletes and unique constraints of the SQL schema.
type Store struct {
	mu sync.Mutex

	nextID int64
	now    func() time.Time

	users        map[int64]*models.User
	profiles     map[int64]*models.UserProfile
	events       map[int64]*models.Event
	participants []*models.EventParticipant
	joinInfos    []*models.EventJoinInfo
	contacts     []*models.ContactMessage

	// Err, when set, is returned by every repository call
	Err error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		now:      time.Now,
		users:    map[int64]*models.User{},
		profiles: map[int64]*models.UserProfile{},
		events:   map[int64]*models.Event{},
	}
}

// Repositories bundles fakes backed by s
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:        &UserRepository{s},
		EventRepository:       &EventRepository{s},
		ParticipantRepository: &ParticipantRepository{s},
		ContactRepository:     &ContactRepository{s},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AddUser inserts a user directly and returns it
func (s *Store) AddUser(username, email, passwordHash string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{
		ID:        s.id(),
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		IsActive:  true,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	s.users[u.ID] = u
	return u
}

// AddEvent inserts an event directly and returns it
func (s *Store) AddEvent(e models.Event) *models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.id()
	e.CreatedAt = s.now()
	e.UpdatedAt = e.CreatedAt
	stored := e
	s.events[e.ID] = &stored
	out := stored
	return &out
}

// AddParticipant records userID as a participant of eventID without capacity checks
func (s *Store) AddParticipant(eventID, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = append(s.participants, &models.EventParticipant{
		ID: s.id(), EventID: eventID, UserID: userID, JoinedAt: s.now(),
	})
}

// Event returns a copy of the stored event, if any
func (s *Store) Event(id int64) (*models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, false
	}
	out := *e
	return &out, true
}

// EventCount returns the number of stored events
func (s *Store) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// ParticipantCount returns the number of participants of eventID
func (s *Store) ParticipantCount(eventID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(eventID)
}

// JoinInfos returns copies of the join infos stored for eventID
func (s *Store) JoinInfos(eventID int64) []models.EventJoinInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.EventJoinInfo
	for _, j := range s.joinInfos {
		if j.EventID == eventID {
			out = append(out, *j)
		}
	}
	return out
}

// Contacts returns copies of the stored contact messages
func (s *Store) Contacts() []models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContactMessage, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, *c)
	}
	return out
}

// Profile returns the stored profile of userID, if any
func (s *Store) Profile(userID int64) (*models.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, false
	}
	out := *p
	return &out, true
}

func (s *Store) countLocked(eventID int64) int {
	n := 0
	for _, p := range s.participants {
		if p.EventID == eventID {
			n++
		}
	}
	return n
}

func (s *Store) isParticipantLocked(eventID, userID int64) bool {
	for _, p := range s.participants {
		if p.EventID == eventID && p.UserID == userID {
			return true
		}
	}
	return false
}

// joinInfoActiveLocked mirrors the SQL rule: the info must postdate the current participation row
func (s *Store) joinInfoActiveLocked(j *models.EventJoinInfo) bool {
	for _, p := range s.participants {
		if p.EventID == j.EventID && p.UserID == j.UserID {
			return j.ID > p.ID
		}
	}
	return false
}

func (s *Store) deleteEventLocked(id int64) {
	delete(s.events, id)
	participants := s.participants[:0]
	for _, p := range s.participants {
		if p.EventID != id {
			participants = append(participants, p)
		}
	}
	s.participants = participants

	infos := s.joinInfos[:0]
	for _, j := range s.joinInfos {
		if j.EventID != id {
			infos = append(infos, j)
		}
	}
	s.joinInfos = infos
}

func sortEvents(events []*models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.ID < b.ID
	})
}

// UserRepository is an in-memory repositories.IUserRepository
type UserRepository struct{ s *Store }

func (r *UserRepository) CreateWithProfile(_ context.Context, user *models.User, profile *models.UserProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
	}

	user.ID = r.s.id()
	user.IsActive = true
	user.CreatedAt = r.s.now()
	user.UpdatedAt = user.CreatedAt
	storedUser := *user
	r.s.users[user.ID] = &storedUser

	profile.ID = r.s.id()
	profile.UserID = user.ID
	storedProfile := *profile
	r.s.profiles[user.ID] = &storedProfile
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, u := range r.s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) UsernameExists(_ context.Context, username string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	for _, u := range r.s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) UpdateLastLogin(_ context.Context, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	u, ok := r.s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := r.s.now()
	u.LastLoginAt = &now
	return nil
}

func (r *UserRepository) GetProfile(_ context.Context, userID int64) (*models.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("profile not found")
	}
	out := *p
	return &out, nil
}

// EventRepository is an in-memory repositories.IEventRepository
type EventRepository struct{ s *Store }

func (r *EventRepository) Create(_ context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if err := repositories.TotalPlayersRangeError(event.TotalPlayers); err != nil {
		return err
	}
	event.ID = r.s.id()
	event.CreatedAt = r.s.now()
	event.UpdatedAt = event.CreatedAt
	stored := *event
	r.s.events[event.ID] = &stored
	return nil
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	e, ok := r.s.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	out := *e
	return &out, nil
}

func (r *EventRepository) Update(_ context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	existing, ok := r.s.events[event.ID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if err := repositories.TotalPlayersRangeError(event.TotalPlayers); err != nil {
		return err
	}
	event.OrganizerID = existing.OrganizerID
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = r.s.now()
	stored := *event
	r.s.events[event.ID] = &stored
	return nil
}

func (r *EventRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	r.s.deleteEventLocked(id)
	return nil
}

func (r *EventRepository) List(_ context.Context, filter repositories.EventFilter) ([]*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	events := []*models.Event{}
	for _, e := range r.s.events {
		if filter.Query != "" && !e.Matches(filter.Query) {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.OrganizerID != nil && !e.IsOrganizedBy(*filter.OrganizerID) {
			continue
		}
		out := *e
		events = append(events, &out)
	}
	sortEvents(events)

	if filter.Limit > 0 && uint64(len(events)) > filter.Limit {
		events = events[:filter.Limit]
	}
	return events, nil
}

func (r *EventRepository) DeleteBefore(_ context.Context, day time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	var n int64
	for id, e := range r.s.events {
		if e.IsPast(day) {
			r.s.deleteEventLocked(id)
			n++
		}
	}
	return n, nil
}

// ParticipantRepository is an in-memory repositories.IParticipantRepository
type ParticipantRepository struct{ s *Store }

func (r *ParticipantRepository) Join(_ context.Context, info *models.EventJoinInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	event, ok := r.s.events[info.EventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if r.s.isParticipantLocked(info.EventID, info.UserID) {
		return apperrors.ErrAlreadyJoined
	}
	if event.IsFull(r.s.countLocked(info.EventID)) {
		return apperrors.ErrEventFull
	}

	r.s.participants = append(r.s.participants, &models.EventParticipant{
		ID: r.s.id(), EventID: info.EventID, UserID: info.UserID, JoinedAt: r.s.now(),
	})
	info.ID = r.s.id()
	info.CreatedAt = r.s.now()
	info.Active = true
	stored := *info
	r.s.joinInfos = append(r.s.joinInfos, &stored)
	return nil
}

func (r *ParticipantRepository) Leave(_ context.Context, eventID, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, p := range r.s.participants {
		if p.EventID == eventID && p.UserID == userID {
			r.s.participants = append(r.s.participants[:i], r.s.participants[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotJoined
}

func (r *ParticipantRepository) IsParticipant(_ context.Context, eventID, userID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	return r.s.isParticipantLocked(eventID, userID), nil
}

func (r *ParticipantRepository) Count(_ context.Context, eventID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return r.s.countLocked(eventID), nil
}

func (r *ParticipantRepository) CountByEvents(_ context.Context, eventIDs []int64) (map[int64]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	counts := make(map[int64]int, len(eventIDs))
	for _, id := range eventIDs {
		if n := r.s.countLocked(id); n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}

func (r *ParticipantRepository) EventsJoinedBy(_ context.Context, userID int64) ([]*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	events := []*models.Event{}
	for _, p := range r.s.participants {
		if p.UserID != userID {
			continue
		}
		if e, ok := r.s.events[p.EventID]; ok {
			out := *e
			events = append(events, &out)
		}
	}
	sortEvents(events)
	return events, nil
}

func (r *ParticipantRepository) JoinInfosByEvents(_ context.Context, eventIDs []int64) (map[int64][]*models.EventJoinInfo, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	wanted := make(map[int64]bool, len(eventIDs))
	for _, id := range eventIDs {
		wanted[id] = true
	}
	infos := make(map[int64][]*models.EventJoinInfo, len(eventIDs))
	for _, j := range r.s.joinInfos {
		if !wanted[j.EventID] {
			continue
		}
		out := *j
		out.Active = r.s.joinInfoActiveLocked(j)
		infos[j.EventID] = append(infos[j.EventID], &out)
	}
	return infos, nil
}

// ContactRepository is an in-memory repositories.IContactRepository
type ContactRepository struct{ s *Store }

func (r *ContactRepository) Create(_ context.Context, msg *models.ContactMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	msg.ID = r.s.id()
	msg.SentAt = r.s.now()
	stored := *msg
	r.s.contacts = append(r.s.contacts, &stored)
	return nil
}

var (
	_ repositories.IUserRepository        = (*UserRepository)(nil)
	_ repositories.IEventRepository       = (*EventRepository)(nil)
	_ repositories.IParticipantRepository = (*ParticipantRepository)(nil)
	_ repositories.IContactRepository     = (*ContactRepository)(nil)
)
