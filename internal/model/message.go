package model

import (
	"time"

	"github.com/google/uuid"
)

// Message belongs to an application thread and is immutable once created.
// Exactly one of HiringManagerID and CandidateID is set. ClientToken is an
// optional client-generated idempotency key, unique within the application,
// so a retried send cannot insert a duplicate.
type Message struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID   uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_messages_application_client_token" json:"applicationId"`
	Content         string         `gorm:"size:2000;not null" json:"content"`
	HiringManagerID *uuid.UUID     `gorm:"type:uuid" json:"hiringManagerId,omitempty"`
	CandidateID     *uuid.UUID     `gorm:"type:uuid" json:"candidateId,omitempty"`
	ClientToken     *string        `gorm:"size:64;uniqueIndex:idx_messages_application_client_token" json:"clientToken,omitempty"`
	HiringManager   *HiringManager `json:"hiringManager,omitempty"`
	Candidate       *Candidate     `json:"candidate,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func (m *Message) TableName() string {
	return "messages"
}
