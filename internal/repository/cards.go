package repository

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

// CardRepository keeps cards in memory in insertion order. The
// visibility filter depends on List being order-stable.
type CardRepository struct {
	mu    sync.RWMutex
	cards map[uuid.UUID]entity.TaskCard
	order []uuid.UUID
}

func NewCardRepository() *CardRepository {
	return &CardRepository{
		cards: make(map[uuid.UUID]entity.TaskCard),
	}
}

func (r *CardRepository) Create(_ context.Context, card entity.TaskCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards[card.ID] = card
	r.order = append(r.order, card.ID)

	return nil
}

func (r *CardRepository) Update(_ context.Context, card entity.TaskCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cards[card.ID]; !ok {
		return entity.ErrCardNotFound
	}

	r.cards[card.ID] = card

	return nil
}

func (r *CardRepository) GetByID(_ context.Context, id uuid.UUID) (entity.TaskCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := r.cards[id]
	if !ok {
		return entity.TaskCard{}, entity.ErrCardNotFound
	}

	return card, nil
}

func (r *CardRepository) List(_ context.Context) ([]entity.TaskCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cards := make([]entity.TaskCard, 0, len(r.order))
	for _, id := range r.order {
		cards = append(cards, r.cards[id])
	}

	return cards, nil
}
