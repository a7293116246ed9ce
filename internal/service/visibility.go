package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

// VisibleCards returns the subset of cards the user may see. Pure and
// order-preserving: the result keeps the input ordering and neither
// slice is mutated. Applying it twice yields the same subset.
//
//   - Client: cards belonging to the user's linked client.
//   - CreativeHead: cards of clients whose assigned head is the user.
//   - Contributor/Freelancer: cards the user is assigned to.
//   - Everyone else: the full collection.
func VisibleCards(user entity.User, cards []entity.TaskCard, clients []entity.Client) []entity.TaskCard {
	switch user.Role {
	case entity.RoleClient:
		return filterCards(cards, func(c entity.TaskCard) bool {
			return !c.ClientID.IsNil() && c.ClientID == user.ClientID
		})

	case entity.RoleCreativeHead:
		managed := make(map[uuid.UUID]struct{}, len(clients))

		for _, cl := range clients {
			if cl.AssignedHeadID == user.ID {
				managed[cl.ID] = struct{}{}
			}
		}

		return filterCards(cards, func(c entity.TaskCard) bool {
			_, ok := managed[c.ClientID]
			return ok
		})

	case entity.RoleContributor, entity.RoleFreelancer:
		return filterCards(cards, func(c entity.TaskCard) bool {
			return c.IsAssignee(user.ID)
		})

	default:
		out := make([]entity.TaskCard, len(cards))
		copy(out, cards)

		return out
	}
}

func filterCards(cards []entity.TaskCard, keep func(entity.TaskCard) bool) []entity.TaskCard {
	out := make([]entity.TaskCard, 0, len(cards))

	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}

	return out
}

// canSeeCard applies the same role rule to a single card.
func (s *Service) canSeeCard(ctx context.Context, user entity.User, card entity.TaskCard) (bool, error) {
	switch user.Role {
	case entity.RoleClient:
		return !card.ClientID.IsNil() && card.ClientID == user.ClientID, nil

	case entity.RoleCreativeHead:
		if card.ClientID.IsNil() {
			return false, nil
		}

		client, err := s.clientRepo.GetByID(ctx, card.ClientID)
		if err != nil {
			return false, err
		}

		return client.AssignedHeadID == user.ID, nil

	case entity.RoleContributor, entity.RoleFreelancer:
		return card.IsAssignee(user.ID), nil

	default:
		return true, nil
	}
}
