package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateAddresses(t *testing.T) {
	t.Run("collects from, to and cc in stable order", func(t *testing.T) {
		email := &InboundEmail{
			FromEmail: "sender@acme.test",
			ToEmails:  []string{"support@crm.test", "sales@crm.test"},
			CcEmails:  []string{"boss@acme.test"},
		}

		assert.Equal(t, []string{
			"sender@acme.test",
			"support@crm.test",
			"sales@crm.test",
			"boss@acme.test",
		}, email.CandidateAddresses())
	})

	t.Run("lowercases and trims", func(t *testing.T) {
		email := &InboundEmail{
			FromEmail: "  Sender@ACME.test ",
			ToEmails:  []string{"Support@CRM.Test"},
		}

		assert.Equal(t, []string{"sender@acme.test", "support@crm.test"}, email.CandidateAddresses())
	})

	t.Run("deduplicates across fields", func(t *testing.T) {
		email := &InboundEmail{
			FromEmail: "sender@acme.test",
			ToEmails:  []string{"SENDER@acme.test", "other@acme.test"},
			CcEmails:  []string{"other@acme.test"},
		}

		assert.Equal(t, []string{"sender@acme.test", "other@acme.test"}, email.CandidateAddresses())
	})

	t.Run("skips empty entries", func(t *testing.T) {
		email := &InboundEmail{
			FromEmail: "sender@acme.test",
			ToEmails:  []string{"", "  "},
		}

		assert.Equal(t, []string{"sender@acme.test"}, email.CandidateAddresses())
	})
}

func TestCandidateDomains(t *testing.T) {
	t.Run("derives unique host parts", func(t *testing.T) {
		email := &InboundEmail{
			FromEmail: "sender@acme.test",
			ToEmails:  []string{"support@crm.test", "sales@crm.test"},
		}

		assert.Equal(t, []string{"acme.test", "crm.test"}, email.CandidateDomains())
	})

	t.Run("ignores malformed addresses", func(t *testing.T) {
		email := &InboundEmail{
			FromEmail: "not-an-address",
			ToEmails:  []string{"trailing@"},
			CcEmails:  []string{"ok@crm.test"},
		}

		assert.Equal(t, []string{"crm.test"}, email.CandidateDomains())
	})
}
