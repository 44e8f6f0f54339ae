package dto

import (
	"time"
)

type CreateMessageRequest struct {
	ApplicationID   string `json:"applicationId" validate:"required,uuid"`
	Content         string `json:"content" validate:"required,max=2000"`
	HiringManagerID string `json:"hiringManagerId" validate:"omitempty,uuid"`
	CandidateID     string `json:"candidateId" validate:"omitempty,uuid"`
	ClientToken     string `json:"clientToken" validate:"omitempty,max=64"`
}

type MessageSender struct {
	Type      string `json:"type"` // "hiring-manager" or "candidate"
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type MessageItem struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	Sender    MessageSender `json:"sender"`
}

type LastMessage struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	IsFromMe  bool      `json:"isFromMe"`
}

// ThreadSummary is one row of the inbox view: an application with its
// latest message and the other party's identity.
type ThreadSummary struct {
	ApplicationID string        `json:"applicationId"`
	RoleID        string        `json:"roleId"`
	RoleTitle     string        `json:"roleTitle"`
	CompanyID     string        `json:"companyId"`
	CompanyName   string        `json:"companyName"`
	OtherParty    MessageSender `json:"otherParty"`
	LastMessage   *LastMessage  `json:"lastMessage"`
	MessageCount  int64         `json:"messageCount"`
}
