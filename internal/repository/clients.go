package repository

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

type ClientRepository struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]entity.Client
	order   []uuid.UUID
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		clients: make(map[uuid.UUID]entity.Client),
	}
}

func (r *ClientRepository) Create(_ context.Context, client entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[client.ID] = client
	r.order = append(r.order, client.ID)

	return nil
}

func (r *ClientRepository) Update(_ context.Context, client entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[client.ID]; !ok {
		return entity.ErrClientNotFound
	}

	r.clients[client.ID] = client

	return nil
}

func (r *ClientRepository) GetByID(_ context.Context, id uuid.UUID) (entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return entity.Client{}, entity.ErrClientNotFound
	}

	return client, nil
}

func (r *ClientRepository) List(_ context.Context) ([]entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]entity.Client, 0, len(r.order))
	for _, id := range r.order {
		clients = append(clients, r.clients[id])
	}

	return clients, nil
}
