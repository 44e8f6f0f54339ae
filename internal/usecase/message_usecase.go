package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fadilmartias/job-board/internal/dto"
	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/fsm"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageUsecase struct {
	msgRepo *repository.MessageRepository
	appRepo *repository.ApplicationRepository
	logger  *zap.Logger
}

func NewMessageUsecase(msgRepo *repository.MessageRepository, appRepo *repository.ApplicationRepository, logger *zap.Logger) *MessageUsecase {
	return &MessageUsecase{
		msgRepo: msgRepo,
		appRepo: appRepo,
		logger:  logger.Named("message_usecase"),
	}
}

// Send enforces, in order: exactly one sender, application exists,
// application in a messaging-eligible stage, sender is a party to the
// thread. The boolean result reports whether a new message was stored;
// replaying a client token returns the original message with false.
func (uc *MessageUsecase) Send(ctx context.Context, req dto.CreateMessageRequest) (*model.Message, bool, error) {
	if (req.HiringManagerID == "") == (req.CandidateID == "") {
		return nil, false, fmt.Errorf("%w: exactly one sender must be specified", e.ErrInvalidInput)
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, false, fmt.Errorf("%w: message cannot be empty", e.ErrInvalidInput)
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return nil, false, fmt.Errorf("%w: invalid application id", e.ErrInvalidInput)
	}

	application, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, false, fmt.Errorf("application: %w", err)
	}
	if !fsm.MessagingEligible(application.Status) {
		return nil, false, e.ErrMessagingClosed
	}

	message := &model.Message{
		ID:            uuid.New(),
		ApplicationID: applicationID,
		Content:       content,
	}
	if req.HiringManagerID != "" {
		senderID, err := uuid.Parse(req.HiringManagerID)
		if err != nil {
			return nil, false, fmt.Errorf("%w: invalid sender id", e.ErrInvalidInput)
		}
		if application.Role == nil || application.Role.HiringManagerID != senderID {
			return nil, false, fmt.Errorf("%w: you are not the hiring manager for this role", e.ErrForbidden)
		}
		message.HiringManagerID = &senderID
	} else {
		senderID, err := uuid.Parse(req.CandidateID)
		if err != nil {
			return nil, false, fmt.Errorf("%w: invalid sender id", e.ErrInvalidInput)
		}
		if application.CandidateID != senderID {
			return nil, false, fmt.Errorf("%w: you are not the candidate for this application", e.ErrForbidden)
		}
		message.CandidateID = &senderID
	}

	if req.ClientToken != "" {
		existing, err := uc.msgRepo.FindByClientToken(ctx, applicationID, req.ClientToken)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, e.ErrNotFound) {
			return nil, false, err
		}
		token := req.ClientToken
		message.ClientToken = &token
	}

	if err := uc.msgRepo.Create(ctx, message); err != nil {
		if errors.Is(err, e.ErrConflict) && req.ClientToken != "" {
			// A concurrent retry with the same token won; return its row.
			existing, ferr := uc.msgRepo.FindByClientToken(ctx, applicationID, req.ClientToken)
			if ferr == nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create message: %w", err)
	}
	return message, true, nil
}

// Thread returns the ordered message list of an application with the
// sender shape the UI renders.
func (uc *MessageUsecase) Thread(ctx context.Context, applicationID uuid.UUID) ([]dto.MessageItem, error) {
	messages, err := uc.msgRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MessageItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, dto.MessageItem{
			ID:        m.ID.String(),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
			Sender:    senderOf(&m),
		})
	}
	return items, nil
}

func senderOf(m *model.Message) dto.MessageSender {
	if m.HiringManagerID != nil {
		sender := dto.MessageSender{Type: dto.PersonaTypeHiringManager, ID: m.HiringManagerID.String()}
		if m.HiringManager != nil {
			sender.Name = m.HiringManager.Name
			sender.AvatarURL = m.HiringManager.AvatarURL
		}
		return sender
	}
	sender := dto.MessageSender{Type: dto.PersonaTypeCandidate}
	if m.CandidateID != nil {
		sender.ID = m.CandidateID.String()
	}
	if m.Candidate != nil {
		sender.Name = m.Candidate.Name
		sender.AvatarURL = m.Candidate.AvatarURL
	}
	return sender
}

func (uc *MessageUsecase) ThreadsForHiringManager(ctx context.Context, hiringManagerID uuid.UUID) ([]dto.ThreadSummary, error) {
	applications, err := uc.appRepo.ListThreadsForHiringManager(ctx, hiringManagerID)
	if err != nil {
		return nil, err
	}
	return uc.summarize(ctx, applications, func(a *model.Application, last *model.Message) (dto.MessageSender, bool) {
		other := dto.MessageSender{Type: dto.PersonaTypeCandidate, ID: a.CandidateID.String()}
		if a.Candidate != nil {
			other.Name = a.Candidate.Name
			other.AvatarURL = a.Candidate.AvatarURL
		}
		fromMe := last != nil && last.HiringManagerID != nil && *last.HiringManagerID == hiringManagerID
		return other, fromMe
	})
}

func (uc *MessageUsecase) ThreadsForCandidate(ctx context.Context, candidateID uuid.UUID) ([]dto.ThreadSummary, error) {
	applications, err := uc.appRepo.ListThreadsForCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return uc.summarize(ctx, applications, func(a *model.Application, last *model.Message) (dto.MessageSender, bool) {
		other := dto.MessageSender{Type: dto.PersonaTypeHiringManager}
		if a.Role != nil {
			other.ID = a.Role.HiringManagerID.String()
			if a.Role.HiringManager != nil {
				other.Name = a.Role.HiringManager.Name
				other.AvatarURL = a.Role.HiringManager.AvatarURL
			}
		}
		fromMe := last != nil && last.CandidateID != nil && *last.CandidateID == candidateID
		return other, fromMe
	})
}

func (uc *MessageUsecase) summarize(ctx context.Context, applications []model.Application, otherParty func(*model.Application, *model.Message) (dto.MessageSender, bool)) ([]dto.ThreadSummary, error) {
	threads := make([]dto.ThreadSummary, 0, len(applications))
	lastAt := make(map[string]time.Time, len(applications))
	for i := range applications {
		a := &applications[i]

		last, err := uc.msgRepo.LastByApplication(ctx, a.ID)
		if err != nil && !errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		count, err := uc.msgRepo.CountByApplication(ctx, a.ID)
		if err != nil {
			return nil, err
		}

		summary := dto.ThreadSummary{
			ApplicationID: a.ID.String(),
			RoleID:        a.RoleID.String(),
			MessageCount:  count,
		}
		if a.Role != nil {
			summary.RoleTitle = a.Role.Title
			summary.CompanyID = a.Role.CompanyID.String()
			if a.Role.Company != nil {
				summary.CompanyName = a.Role.Company.Name
			}
		}
		other, fromMe := otherParty(a, last)
		summary.OtherParty = other
		if last != nil {
			summary.LastMessage = &dto.LastMessage{
				Content:   last.Content,
				CreatedAt: last.CreatedAt,
				IsFromMe:  fromMe,
			}
			lastAt[summary.ApplicationID] = last.CreatedAt
		}
		threads = append(threads, summary)
	}

	// Most recent activity first; threads without messages sink.
	sort.SliceStable(threads, func(i, j int) bool {
		return lastAt[threads[i].ApplicationID].After(lastAt[threads[j].ApplicationID])
	})
	return threads, nil
}
