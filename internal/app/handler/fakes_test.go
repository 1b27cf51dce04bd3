package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"seeds-backend/internal/app/ds"
	"seeds-backend/internal/app/repository"
)

// memStore is an in-memory Store. Setting err makes every call fail with it.
type memStore struct {
	mu       sync.Mutex
	nextID   uint
	users    []ds.User
	clients  []ds.Client
	licenses []ds.License
	err      error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (s *memStore) id() uint {
	id := s.nextID
	s.nextID++
	return id
}

func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, &repository.BackendError{
			Message: fmt.Sprintf("invalid input syntax for type bigint: %q", id),
			Code:    "22P02",
		}
	}
	return uint(n), nil
}

func result[T any](data T, err error) repository.Result[T] {
	if err != nil {
		var zero T
		return repository.Result[T]{Data: zero, Error: err}
	}
	return repository.Result[T]{Data: data}
}

func (s *memStore) FindUserByCredentials(_ context.Context, username, password string) repository.Result[*ds.User] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result[*ds.User](nil, s.err)
	}

	var found []ds.User
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			found = append(found, u)
		}
	}
	switch len(found) {
	case 0:
		return result[*ds.User](nil, nil)
	case 1:
		return result(&found[0], nil)
	default:
		return result[*ds.User](nil, errors.New("multiple rows"))
	}
}

func (s *memStore) ListUsers(context.Context) repository.Result[[]ds.User] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return result(append([]ds.User{}, s.users...), s.err)
}

func (s *memStore) InsertUsers(_ context.Context, users ...ds.User) repository.Result[[]ds.User] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result[[]ds.User](nil, s.err)
	}
	for i := range users {
		users[i].ID = s.id()
		s.users = append(s.users, users[i])
	}
	return result(users, nil)
}

func (s *memStore) DeleteUser(_ context.Context, id string) repository.Result[int64] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result[int64](0, s.err)
	}
	n, err := parseID(id)
	if err != nil {
		return result[int64](0, err)
	}
	kept := s.users[:0]
	var deleted int64
	for _, u := range s.users {
		if u.ID == n {
			deleted++
			continue
		}
		kept = append(kept, u)
	}
	s.users = kept
	return result(deleted, nil)
}

func (s *memStore) ListClients(context.Context) repository.Result[[]ds.Client] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return result(append([]ds.Client{}, s.clients...), s.err)
}

func (s *memStore) InsertClients(_ context.Context, clients ...ds.Client) repository.Result[[]ds.Client] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result[[]ds.Client](nil, s.err)
	}
	for i := range clients {
		clients[i].ID = s.id()
		s.clients = append(s.clients, clients[i])
	}
	return result(clients, nil)
}

func (s *memStore) DeleteClient(_ context.Context, id string) repository.Result[int64] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result[int64](0, s.err)
	}
	n, err := parseID(id)
	if err != nil {
		return result[int64](0, err)
	}
	kept := s.clients[:0]
	var deleted int64
	for _, c := range s.clients {
		if c.ID == n {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	s.clients = kept
	return result(deleted, nil)
}

func (s *memStore) ListLicenses(context.Context) repository.Result[[]ds.License] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return result(append([]ds.License{}, s.licenses...), s.err)
}

func (s *memStore) InsertLicenses(_ context.Context, licenses ...ds.License) repository.Result[[]ds.License] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result[[]ds.License](nil, s.err)
	}
	for i := range licenses {
		licenses[i].ID = s.id()
		s.licenses = append(s.licenses, licenses[i])
	}
	return result(licenses, nil)
}

func (s *memStore) UpdateLicensePayment(_ context.Context, id, status string) repository.Result[int64] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result[int64](0, s.err)
	}
	n, err := parseID(id)
	if err != nil {
		return result[int64](0, err)
	}
	var updated int64
	for i := range s.licenses {
		if s.licenses[i].ID == n {
			st := status
			s.licenses[i].Payment = &st
			updated++
		}
	}
	return result(updated, nil)
}

func (s *memStore) SearchLicensesByClient(_ context.Context, q string) repository.Result[[]ds.License] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result[[]ds.License](nil, s.err)
	}
	found := []ds.License{}
	for _, l := range s.licenses {
		if strings.Contains(strings.ToLower(l.Client), strings.ToLower(q)) {
			found = append(found, l)
		}
	}
	return result(found, nil)
}

type upload struct {
	name        string
	data        []byte
	contentType string
}

// memSeeds is an in-memory SeedStorage.
type memSeeds struct {
	mu      sync.Mutex
	uploads []upload
	err     error
}

func (m *memSeeds) Upload(_ context.Context, name string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.uploads = append(m.uploads, upload{name: name, data: data, contentType: contentType})
	return name, nil
}

func (m *memSeeds) PublicURL(path string) string {
	return "http://minio.test/seeds/" + path
}
