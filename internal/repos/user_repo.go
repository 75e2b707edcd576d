package repos

import "grocerhub/internal/domain"

type UserRepo struct{ store *Store }

func NewUserRepo(s *Store) *UserRepo { return &UserRepo{store: s} }

func (r *UserRepo) LoadAll() []domain.User {
	return loadAll[domain.User](r.store, usersFile)
}

func (r *UserRepo) SaveAll(users []domain.User) error {
	return saveAll(r.store, usersFile, users)
}

// FindByPhone looks a user up by their identity. The bootstrap admin record
// comes back like any other user.
func (r *UserRepo) FindByPhone(phone string) (domain.User, bool) {
	for _, u := range r.LoadAll() {
		if u.Phone == phone {
			return u, true
		}
	}
	return domain.User{}, false
}

func (r *UserRepo) Add(u domain.User) error {
	users := r.LoadAll()
	users = append(users, u)
	return r.SaveAll(users)
}

func (r *UserRepo) Update(u domain.User) (bool, error) {
	users := r.LoadAll()
	for i := range users {
		if users[i].Phone == u.Phone {
			users[i] = u
			return true, r.SaveAll(users)
		}
	}
	return false, nil
}

func (r *UserRepo) DeleteByPhone(phone string) (bool, error) {
	users := r.LoadAll()
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.Phone == phone {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return false, nil
	}
	return true, r.SaveAll(kept)
}
