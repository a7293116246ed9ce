package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

// Dashboard aggregates KPIs over the cards the viewer may see. The
// finance and client blocks are attached only for the roles entitled
// to them; everything is derived, nothing is mutated.
func (s *Service) Dashboard(ctx context.Context) (entity.DashboardStats, error) {
	user, err := s.actor(ctx, entity.PermissionViewBoard)
	if err != nil {
		return entity.DashboardStats{}, err
	}

	cards, err := s.ListCards(ctx)
	if err != nil {
		return entity.DashboardStats{}, err
	}

	now := time.Now()
	stats := entity.DashboardStats{TotalCards: len(cards)}

	for _, card := range cards {
		if card.Status == entity.CardStatusDone {
			stats.CompletedCards++
		}

		if card.IsOverdue(now) {
			stats.OverdueCards++
		}

		for _, tl := range card.TimeLogs {
			stats.HoursLogged += tl.Hours
		}
	}

	if stats.TotalCards > 0 {
		stats.OnTimeRate = 1 - float64(stats.OverdueCards)/float64(stats.TotalCards)
	}

	if entity.HasPermission(user.Role, entity.PermissionViewFinance) {
		finance, err := s.financeStats(ctx)
		if err != nil {
			return entity.DashboardStats{}, err
		}

		stats.Finance = &finance
	}

	if user.Role == entity.RoleClient {
		stats.Client = clientStats(cards, now)
	}

	return stats, nil
}

func (s *Service) financeStats(ctx context.Context) (entity.FinanceStats, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return entity.FinanceStats{}, fmt.Errorf("list clients: %w", err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return entity.FinanceStats{}, fmt.Errorf("list users: %w", err)
	}

	purchases, err := s.supplierRepo.ListPurchases(ctx)
	if err != nil {
		return entity.FinanceStats{}, fmt.Errorf("list purchases: %w", err)
	}

	stats := entity.FinanceStats{
		Receivable:    decimal.Zero,
		Payroll:       decimal.Zero,
		PurchaseCosts: decimal.Zero,
	}

	for _, client := range clients {
		if client.IsActive {
			stats.Receivable = stats.Receivable.Add(client.ContractValue)
		}
	}

	for _, user := range users {
		if user.IsActive && user.Salary != nil {
			stats.Payroll = stats.Payroll.Add(*user.Salary)
		}
	}

	for _, item := range purchases {
		if !item.Paid {
			stats.PurchaseCosts = stats.PurchaseCosts.Add(item.Price)
		}
	}

	stats.Balance = stats.Receivable.Sub(stats.Payroll).Sub(stats.PurchaseCosts)

	return stats, nil
}

func clientStats(cards []entity.TaskCard, now time.Time) *entity.ClientStats {
	stats := &entity.ClientStats{}

	for _, card := range cards {
		if card.RequestStatus == entity.RequestStatusPending {
			stats.PendingRequests++
		}

		if !card.Status.IsTerminal() {
			stats.ActiveCards++
		}

		if card.Status == entity.CardStatusDone &&
			card.DueDate.Year() == now.Year() && card.DueDate.Month() == now.Month() {
			stats.CompletedThisMonth++
		}
	}

	return stats
}

// Calendar buckets the month's deadlines by day. Finance and Admin
// viewers additionally get a RECEIVABLE item on each active client's
// payment day; nobody else ever sees those.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) ([]entity.CalendarDay, error) {
	user, err := s.actor(ctx, entity.PermissionViewBoard)
	if err != nil {
		return nil, err
	}

	cards, err := s.ListCards(ctx)
	if err != nil {
		return nil, err
	}

	days := make(map[int][]entity.CalendarItem)

	for _, card := range cards {
		if card.DueDate.Year() != year || card.DueDate.Month() != month {
			continue
		}

		day := card.DueDate.Day()
		days[day] = append(days[day], entity.CalendarItem{
			Type:   entity.CalendarItemTask,
			Title:  card.Title,
			CardID: card.ID,
		})
	}

	if entity.HasPermission(user.Role, entity.PermissionViewFinance) {
		clients, err := s.clientRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list clients: %w", err)
		}

		lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

		for _, client := range clients {
			if !client.IsActive {
				continue
			}

			day := client.PaymentDay
			if day > lastDay {
				day = lastDay
			}

			amount := client.ContractValue
			days[day] = append(days[day], entity.CalendarItem{
				Type:     entity.CalendarItemReceivable,
				Title:    client.Name,
				ClientID: client.ID,
				Amount:   &amount,
			})
		}
	}

	out := make([]entity.CalendarDay, 0, len(days))
	for day, items := range days {
		out = append(out, entity.CalendarDay{
			Date:  time.Date(year, month, day, 0, 0, 0, 0, time.Local),
			Items: items,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

// Insights asks the analysis collaborator for recommendations over a
// counts-only snapshot of the visible board. The collaborator never
// fails: any upstream error degrades to its static fallback text.
func (s *Service) Insights(ctx context.Context) (string, error) {
	user, err := s.actor(ctx, entity.PermissionViewBoard)
	if err != nil {
		return "", err
	}

	cards, err := s.ListCards(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now()

	snapshot := entity.BoardSnapshot{
		Role:       user.Role,
		TotalCards: len(cards),
		ByStatus:   make(map[entity.CardStatus]int),
	}

	for _, card := range cards {
		snapshot.ByStatus[card.Status]++

		if card.IsOverdue(now) {
			snapshot.OverdueCount++
		}
	}

	return s.advisor.Analyze(ctx, snapshot), nil
}
