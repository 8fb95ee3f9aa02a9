package facade

import (
	"errors"
	"strings"

	"github.com/evcraddock/hbnb/internal/model"
	"github.com/evcraddock/hbnb/internal/repository"
)

const (
	msgUserNotFound = "User not found"
	msgEmailTaken   = "Email already registered"
	msgUnknownUser  = "This user does not exist!"
)

// CreateUserInput holds the fields needed to register a user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

func sameEmail(email string) func(*model.User) bool {
	return func(u *model.User) bool { return strings.EqualFold(u.Email(), email) }
}

// CreateUser validates and stores a new user. Emails are unique, ignoring case.
func (f *Facade) CreateUser(in CreateUserInput) (*model.User, error) {
	const op = "create user"

	u, err := model.NewUser(in.FirstName, in.LastName, in.Email, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.users.AddUnique(u, sameEmail(u.Email())); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, model.Conflict(op, msgEmailTaken)
		}
		return nil, storeError(op, msgUserNotFound, err)
	}
	logCreated("user", u.ID())
	return u, nil
}

// GetUser returns the user with the given id.
func (f *Facade) GetUser(id string) (*model.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	u, ok := f.users.Get(id)
	if !ok {
		return nil, model.NotFound("get user", msgUserNotFound)
	}
	return u, nil
}

// GetUserByEmail looks a user up by email, ignoring case.
func (f *Facade) GetUserByEmail(email string) (*model.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	u, ok := f.users.GetBy(sameEmail(email))
	if !ok {
		return nil, model.NotFound("get user by email", msgUserNotFound)
	}
	return u, nil
}

// GetAllUsers returns every user in creation order.
func (f *Facade) GetAllUsers() []*model.User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.users.GetAll()
}

// UpdateUser applies upd to the user. Changing the email to one held by
// another user is a conflict.
func (f *Facade) UpdateUser(id string, upd model.UserUpdate) (*model.User, error) {
	const op = "update user"

	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users.Get(id)
	if !ok {
		return nil, model.NotFound(op, msgUserNotFound)
	}

	if upd.Email != nil {
		if other, taken := f.users.GetBy(sameEmail(*upd.Email)); taken && other.ID() != id {
			return nil, model.Conflict(op, msgEmailTaken)
		}
	}

	if err := f.users.Update(id, func(u *model.User) error { return u.Apply(upd) }); err != nil {
		return nil, storeError(op, msgUserNotFound, err)
	}
	return u, nil
}

// resolveUser looks up a referenced user; callers hold f.mu.
func (f *Facade) resolveUser(op, id string) (*model.User, error) {
	u, ok := f.users.Get(id)
	if !ok {
		return nil, model.InvalidReference(op, msgUnknownUser)
	}
	return u, nil
}
