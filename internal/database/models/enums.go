package models

// TicketStatus defines the lifecycle states of a support ticket.
// The transition graph is deliberately permissive: any status may be assigned
// from any other status. The only mandatory side effect is resolution
// timestamping, handled by Ticket.ApplyStatus.
type TicketStatus string

const (
	TicketStatusUnassigned          TicketStatus = "unassigned"
	TicketStatusOpen                TicketStatus = "open"
	TicketStatusInProgress          TicketStatus = "in_progress"
	TicketStatusWaitingOnCustomer   TicketStatus = "waiting_on_customer"
	TicketStatusWaitingOnThirdParty TicketStatus = "waiting_on_third_party"
	TicketStatusResolved            TicketStatus = "resolved"
	TicketStatusClosed              TicketStatus = "closed"
)

// IsValid checks if the TicketStatus is valid
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusUnassigned, TicketStatusOpen, TicketStatusInProgress,
		TicketStatusWaitingOnCustomer, TicketStatusWaitingOnThirdParty,
		TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// IsResolved reports whether the status counts as resolved for
// resolved_at stamping purposes.
func (s TicketStatus) IsResolved() bool {
	return s == TicketStatusResolved || s == TicketStatusClosed
}

// TicketPriority defines the priority levels of a support ticket
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// IsValid checks if the TicketPriority is valid
func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// BusinessStage defines the position of a business in the sales pipeline.
// Stage assignment is direct: any stage is reachable from any stage.
type BusinessStage string

const (
	BusinessStageLead          BusinessStage = "lead"
	BusinessStageProspect      BusinessStage = "prospect"
	BusinessStageQualified     BusinessStage = "qualified"
	BusinessStageOfferSent     BusinessStage = "offer_sent"
	BusinessStageOfferAccepted BusinessStage = "offer_accepted"
	BusinessStageOfferDeclined BusinessStage = "offer_declined"
	BusinessStageCustomer      BusinessStage = "customer"
	BusinessStageChurned       BusinessStage = "churned"
)

// IsValid checks if the BusinessStage is valid
func (s BusinessStage) IsValid() bool {
	switch s {
	case BusinessStageLead, BusinessStageProspect, BusinessStageQualified,
		BusinessStageOfferSent, BusinessStageOfferAccepted, BusinessStageOfferDeclined,
		BusinessStageCustomer, BusinessStageChurned:
		return true
	}
	return false
}

// BusinessStatus defines the record status of a business
type BusinessStatus string

const (
	BusinessStatusActive   BusinessStatus = "active"
	BusinessStatusArchived BusinessStatus = "archived"
)

// IsValid checks if the BusinessStatus is valid
func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusActive, BusinessStatusArchived:
		return true
	}
	return false
}

// ActivityType defines the kinds of scheduled follow-up work
type ActivityType string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeTask    ActivityType = "task"
)

// IsValid checks if the ActivityType is valid
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeCall, ActivityTypeMeeting, ActivityTypeTask:
		return true
	}
	return false
}
