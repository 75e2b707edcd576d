package services

import (
	"sync"

	"grocerhub/internal/domain"
	"grocerhub/internal/repos"
)

// AuthService owns signup, login and the in-memory sid->phone session table.
// Passwords are stored and compared as plain text; hardening credential
// storage is out of scope for this system.
type AuthService struct {
	Users *repos.UserRepo

	mu       sync.Mutex
	sessions map[string]string
}

func NewAuthService(users *repos.UserRepo) *AuthService {
	return &AuthService{Users: users, sessions: make(map[string]string)}
}

// Signup registers a new user. Phone numbers are the user identity and must
// be unique; a duplicate leaves the collection unchanged.
func (s *AuthService) Signup(name, dob, phone, location, password string) (*domain.User, error) {
	if _, ok := s.Users.FindByPhone(phone); ok {
		return nil, ErrDuplicatePhone
	}
	u := domain.User{Name: name, DOB: dob, Phone: phone, Location: location, Password: password, Role: domain.RoleUser}
	if err := s.Users.Add(u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) Login(sid, phone, password string) (*domain.User, error) {
	u, ok := s.Users.FindByPhone(phone)
	if !ok || !u.ValidatePassword(password) {
		return nil, ErrBadCreds
	}
	s.mu.Lock()
	s.sessions[sid] = u.Phone
	s.mu.Unlock()
	return &u, nil
}

func (s *AuthService) Logout(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	s.mu.Lock()
	phone, ok := s.sessions[sid]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	u, ok := s.Users.FindByPhone(phone)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// UpdateProfile edits the caller's record. The phone number is immutable.
func (s *AuthService) UpdateProfile(phone, name, dob, location, password string) (*domain.User, error) {
	u, ok := s.Users.FindByPhone(phone)
	if !ok {
		return nil, ErrNotFound
	}
	u.UpdateProfile(name, dob, location, password)
	if _, err := s.Users.Update(u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) ListUsers() []domain.User {
	return s.Users.LoadAll()
}

// DeleteUser removes a customer account and any live session bound to it.
// Admin accounts cannot be deleted.
func (s *AuthService) DeleteUser(phone string) error {
	u, ok := s.Users.FindByPhone(phone)
	if !ok {
		return ErrNotFound
	}
	if u.IsAdmin() {
		return ErrAdminImmutable
	}
	found, err := s.Users.DeleteByPhone(phone)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	s.mu.Lock()
	for sid, p := range s.sessions {
		if p == phone {
			delete(s.sessions, sid)
		}
	}
	s.mu.Unlock()
	return nil
}
