package serviceimpl_test

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

var errRecordNotFound = errors.New("record not found")

type fakeUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, errRecordNotFound
}

type fakeTaskRepo struct {
	mu    sync.RWMutex
	tasks []models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *fakeTaskRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Task
	for i := range r.tasks {
		if r.tasks[i].UserID == userID {
			task := r.tasks[i]
			out = append(out, &task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) GetByIDAndUserID(_ context.Context, id, userID uuid.UUID) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id && r.tasks[i].UserID == userID {
			task := r.tasks[i]
			return &task, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == task.ID && r.tasks[i].UserID == task.UserID {
			r.tasks[i] = *task
			return nil
		}
	}
	return errRecordNotFound
}

func (r *fakeTaskRepo) DeleteByIDAndUserID(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// deleting a row that does not exist is not an error
	for i := range r.tasks {
		if r.tasks[i].ID == id && r.tasks[i].UserID == userID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}
