package fsm

import (
	"testing"

	"github.com/fadilmartias/job-board/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestApplicationForwardTransitions(t *testing.T) {
	assert.True(t, CanTransitionApplication(model.ApplicationStatusNew, model.ApplicationStatusReviewing))
	assert.True(t, CanTransitionApplication(model.ApplicationStatusNew, model.ApplicationStatusInterview))
	assert.True(t, CanTransitionApplication(model.ApplicationStatusReviewing, model.ApplicationStatusAccepted))
	assert.True(t, CanTransitionApplication(model.ApplicationStatusInterview, model.ApplicationStatusAccepted))
}

func TestApplicationRejectedReachableFromNonTerminal(t *testing.T) {
	for _, from := range []model.ApplicationStatus{
		model.ApplicationStatusNew,
		model.ApplicationStatusReviewing,
		model.ApplicationStatusInterview,
	} {
		assert.True(t, CanTransitionApplication(from, model.ApplicationStatusRejected), "from %s", from)
	}
}

func TestApplicationBackwardAndTerminalTransitionsRejected(t *testing.T) {
	assert.False(t, CanTransitionApplication(model.ApplicationStatusReviewing, model.ApplicationStatusNew))
	assert.False(t, CanTransitionApplication(model.ApplicationStatusAccepted, model.ApplicationStatusReviewing))
	assert.False(t, CanTransitionApplication(model.ApplicationStatusRejected, model.ApplicationStatusNew))
	assert.False(t, CanTransitionApplication(model.ApplicationStatusAccepted, model.ApplicationStatusRejected))
}

func TestRoleLifecycle(t *testing.T) {
	assert.True(t, CanTransitionRole(model.RoleStatusDraft, model.RoleStatusPublished))
	assert.True(t, CanTransitionRole(model.RoleStatusPublished, model.RoleStatusClosed))
	assert.True(t, CanTransitionRole(model.RoleStatusClosed, model.RoleStatusPublished))

	assert.False(t, CanTransitionRole(model.RoleStatusDraft, model.RoleStatusClosed))
	assert.False(t, CanTransitionRole(model.RoleStatusPublished, model.RoleStatusDraft))
	assert.False(t, CanTransitionRole(model.RoleStatusClosed, model.RoleStatusDraft))
}

func TestMessagingEligible(t *testing.T) {
	assert.True(t, MessagingEligible(model.ApplicationStatusInterview))
	assert.True(t, MessagingEligible(model.ApplicationStatusAccepted))
	assert.False(t, MessagingEligible(model.ApplicationStatusNew))
	assert.False(t, MessagingEligible(model.ApplicationStatusReviewing))
	assert.False(t, MessagingEligible(model.ApplicationStatusRejected))
}
