package service

import (
	"fmt"
	"sort"
	"time"

	"crm-portal-backend/internal/repository"
	"crm-portal-backend/internal/scope"

	"github.com/google/uuid"
)

// FeedService composes the dashboard feed. It holds no state of its own;
// every read recomputes from the activity and ticket repositories.
type FeedService struct {
	activityRepo repository.ActivityRepositoryInterface
	ticketRepo   repository.TicketRepositoryInterface
	emailRepo    repository.InboundEmailRepositoryInterface
}

// NewFeedService creates a new feed service
func NewFeedService(
	activityRepo repository.ActivityRepositoryInterface,
	ticketRepo repository.TicketRepositoryInterface,
	emailRepo repository.InboundEmailRepositoryInterface,
) *FeedService {
	return &FeedService{
		activityRepo: activityRepo,
		ticketRepo:   ticketRepo,
		emailRepo:    emailRepo,
	}
}

// Feed item kinds
const (
	FeedItemActivity = "activity"
	FeedItemTicket   = "ticket"
)

// FeedItem is one entry of the merged feed. Date drives the ranking; for
// tickets it is the creation time since tickets carry no due date.
type FeedItem struct {
	Kind     string    `json:"kind"`
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Date     string    `json:"date"`
	Status   string    `json:"status,omitempty"`
	Priority string    `json:"priority,omitempty"`

	sortKey time.Time
}

// FeedResponse represents the merged dashboard feed
type FeedResponse struct {
	Items []FeedItem `json:"items"`
}

// BadgeCountsResponse carries the counts behind the dashboard badges
type BadgeCountsResponse struct {
	UpcomingActivities int `json:"upcoming_activities"`
	OpenTickets        int `json:"open_tickets"`
	UnassociatedEmails int `json:"unassociated_emails"`
}

// GetFeed merges upcoming incomplete activities with open tickets assigned
// to the caller, ordered by date ascending with id ascending as tie-break,
// truncated to limit.
func (s *FeedService) GetFeed(sc scope.Scope, limit int) (*FeedResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	activities, err := s.activityRepo.GetUpcoming(sc.WorkspaceID, time.Now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming activities: %w", err)
	}

	tickets, err := s.ticketRepo.GetOpenAssignedTo(sc.WorkspaceID, sc.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assigned tickets: %w", err)
	}

	items := make([]FeedItem, 0, len(activities)+len(tickets))
	for i := range activities {
		a := &activities[i]
		title := a.Outcome
		if title == "" {
			title = string(a.Type)
		}
		items = append(items, FeedItem{
			Kind:    FeedItemActivity,
			ID:      a.ID,
			Title:   title,
			Date:    a.Date.Format(time.RFC3339),
			sortKey: a.Date,
		})
	}
	for i := range tickets {
		t := &tickets[i]
		items = append(items, FeedItem{
			Kind:     FeedItemTicket,
			ID:       t.ID,
			Title:    t.Subject,
			Date:     t.CreatedAt.Format(time.RFC3339),
			Status:   string(t.Status),
			Priority: string(t.Priority),
			sortKey:  t.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].sortKey.Equal(items[j].sortKey) {
			return items[i].sortKey.Before(items[j].sortKey)
		}
		return items[i].ID.String() < items[j].ID.String()
	})

	if len(items) > limit {
		items = items[:limit]
	}

	return &FeedResponse{Items: items}, nil
}

// GetBadgeCounts returns the counts the dashboard badges poll for
func (s *FeedService) GetBadgeCounts(sc scope.Scope) (*BadgeCountsResponse, error) {
	upcoming, err := s.activityRepo.CountUpcoming(sc.WorkspaceID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming activities: %w", err)
	}

	open, err := s.ticketRepo.CountOpenAssignedTo(sc.WorkspaceID, sc.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assigned tickets: %w", err)
	}

	_, unassociated, err := s.emailRepo.GetUnassociated(sc.WorkspaceID, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to count unassociated emails: %w", err)
	}

	return &BadgeCountsResponse{
		UpcomingActivities: int(upcoming),
		OpenTickets:        int(open),
		UnassociatedEmails: int(unassociated),
	}, nil
}
