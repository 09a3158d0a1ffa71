package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InboundEmail represents a raw received message. BusinessID/ContactID are
// filled by the association resolver or by a manual override; until then the
// email sits unassociated for triage. The workspace column records which
// mailbox ingested the message; association itself is address-based only.
type InboundEmail struct {
	BaseModel
	WorkspaceID uuid.UUID  `json:"workspace_id" gorm:"type:uuid;not null;index"`
	FromEmail   string     `json:"from_email" gorm:"not null;size:200" validate:"required,email,max=200"`
	ToEmails    []string   `json:"to_emails" gorm:"type:jsonb;serializer:json"`
	CcEmails    []string   `json:"cc_emails" gorm:"type:jsonb;serializer:json"`
	Subject     string     `json:"subject" gorm:"size:500"`
	Body        string     `json:"body" gorm:"type:text"`
	ReceivedAt  time.Time  `json:"received_at" gorm:"not null"`
	BusinessID  *uuid.UUID `json:"business_id" gorm:"type:uuid;index"`
	ContactID   *uuid.UUID `json:"contact_id" gorm:"type:uuid;index"`

	Workspace *Workspace `json:"workspace,omitempty" gorm:"foreignKey:WorkspaceID"`
	Business  *Business  `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Contact   *Contact   `json:"contact,omitempty" gorm:"foreignKey:ContactID"`
}

// TableName returns the table name for InboundEmail
func (InboundEmail) TableName() string {
	return "inbound_emails"
}

// CandidateAddresses collects sender, recipients and CC addresses into a
// single lowercased set, in stable order, for the association pipeline.
func (e *InboundEmail) CandidateAddresses() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(addr string) {
		addr = strings.ToLower(strings.TrimSpace(addr))
		if addr == "" || seen[addr] {
			return
		}
		seen[addr] = true
		out = append(out, addr)
	}
	add(e.FromEmail)
	for _, addr := range e.ToEmails {
		add(addr)
	}
	for _, addr := range e.CcEmails {
		add(addr)
	}
	return out
}

// CandidateDomains derives the host part of every candidate address.
// Domain-only matching is computed but never consulted when selecting a
// match; the resolver only logs it before falling through to no-match.
func (e *InboundEmail) CandidateDomains() []string {
	seen := make(map[string]bool)
	var out []string
	for _, addr := range e.CandidateAddresses() {
		at := strings.LastIndex(addr, "@")
		if at < 0 || at == len(addr)-1 {
			continue
		}
		domain := addr[at+1:]
		if seen[domain] {
			continue
		}
		seen[domain] = true
		out = append(out, domain)
	}
	return out
}
