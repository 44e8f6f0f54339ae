// Package fsm holds the explicit allowed-edges tables for the two status
// machines in the system: the application review pipeline and the role
// publication lifecycle.
package fsm

import (
	"github.com/fadilmartias/job-board/internal/model"
)

// applicationEdges encodes the forward-only review pipeline. A status may
// move to any later stage; accepted and rejected are terminal.
var applicationEdges = map[model.ApplicationStatus][]model.ApplicationStatus{
	model.ApplicationStatusNew: {
		model.ApplicationStatusReviewing,
		model.ApplicationStatusInterview,
		model.ApplicationStatusAccepted,
		model.ApplicationStatusRejected,
	},
	model.ApplicationStatusReviewing: {
		model.ApplicationStatusInterview,
		model.ApplicationStatusAccepted,
		model.ApplicationStatusRejected,
	},
	model.ApplicationStatusInterview: {
		model.ApplicationStatusAccepted,
		model.ApplicationStatusRejected,
	},
	model.ApplicationStatusAccepted: {},
	model.ApplicationStatusRejected: {},
}

var roleEdges = map[model.RoleStatus][]model.RoleStatus{
	model.RoleStatusDraft:     {model.RoleStatusPublished},
	model.RoleStatusPublished: {model.RoleStatusClosed},
	model.RoleStatusClosed:    {model.RoleStatusPublished},
}

// CanTransitionApplication reports whether the application status machine
// allows moving from one status to another.
func CanTransitionApplication(from, to model.ApplicationStatus) bool {
	for _, next := range applicationEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionRole reports whether the role publication machine allows
// moving from one status to another.
func CanTransitionRole(from, to model.RoleStatus) bool {
	for _, next := range roleEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MessagingEligible is the single gate deciding whether a thread accepts
// new messages. Evaluated fresh on every send.
func MessagingEligible(status model.ApplicationStatus) bool {
	return status == model.ApplicationStatusInterview ||
		status == model.ApplicationStatusAccepted
}
