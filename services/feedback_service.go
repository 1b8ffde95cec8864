package services

import (
	"errors"
	"time"

	"canteen/entity"
	"canteen/pkg/apperr"
	"canteen/repository"

	"gorm.io/gorm"
)

// Notifier pushes a created notification to connected clients. The
// websocket hub implements it; a nil notifier just skips the push.
type Notifier interface {
	Push(recipientID string, f *entity.Feedback)
}

type FeedbackService struct {
	Repo         *repository.FeedbackRepository
	EmployeeRepo *repository.EmployeeRepository
	Notifier     Notifier

	now func() time.Time
}

func NewFeedbackService(repo *repository.FeedbackRepository, employeeRepo *repository.EmployeeRepository, notifier Notifier) *FeedbackService {
	return &FeedbackService{Repo: repo, EmployeeRepo: employeeRepo, Notifier: notifier, now: time.Now}
}

type NotificationRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	RecipientID string `json:"recipientId"` // empty broadcasts to every non-admin employee
}

// CreateNotification stores an admin notification and pushes it over the
// websocket hub. An empty recipient broadcasts one row per non-admin
// employee so each can be marked read independently.
func (s *FeedbackService) CreateNotification(req *NotificationRequest, senderID string) ([]entity.Feedback, error) {
	sender, err := s.EmployeeRepo.FindByEmployeeID(senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("sender")
		}
		return nil, err
	}

	var recipients []string
	if req.RecipientID != "" {
		if _, err := s.EmployeeRepo.FindByEmployeeID(req.RecipientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("recipient")
			}
			return nil, err
		}
		recipients = []string{req.RecipientID}
	} else {
		customers, err := s.EmployeeRepo.ListCustomers()
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			recipients = append(recipients, c.EmployeeID)
		}
	}

	created := make([]entity.Feedback, 0, len(recipients))
	for _, rid := range recipients {
		f := entity.Feedback{
			Type:        entity.FeedbackNotification,
			Title:       req.Title,
			Content:     req.Content,
			SenderID:    sender.EmployeeID,
			SenderName:  sender.FullName(),
			RecipientID: rid,
			Status:      entity.FeedbackSent,
		}
		if err := s.Repo.Create(&f); err != nil {
			return nil, err
		}
		if s.Notifier != nil {
			s.Notifier.Push(rid, &f)
		}
		created = append(created, f)
	}
	return created, nil
}

// MarkRead flips a notification to READ. Only the recipient may do it.
func (s *FeedbackService) MarkRead(id uint, employeeID string) (*entity.Feedback, error) {
	f, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("notification")
		}
		return nil, err
	}
	if f.RecipientID != employeeID {
		return nil, apperr.Unauthorized("not the recipient of this notification")
	}

	f.Read = true
	f.Status = entity.FeedbackRead
	if err := s.Repo.Save(f); err != nil {
		return nil, err
	}
	return f, nil
}

type IssueRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (s *FeedbackService) CreateSuggestion(req *IssueRequest, senderID string) (*entity.Feedback, error) {
	return s.createIssue(entity.FeedbackSuggestion, req, senderID)
}

func (s *FeedbackService) CreateComplaint(req *IssueRequest, senderID string) (*entity.Feedback, error) {
	return s.createIssue(entity.FeedbackComplaint, req, senderID)
}

func (s *FeedbackService) createIssue(typ entity.FeedbackType, req *IssueRequest, senderID string) (*entity.Feedback, error) {
	sender, err := s.EmployeeRepo.FindByEmployeeID(senderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("sender")
		}
		return nil, err
	}

	f := &entity.Feedback{
		Type:       typ,
		Title:      req.Title,
		Content:    req.Content,
		SenderID:   sender.EmployeeID,
		SenderName: sender.FullName(),
		Status:     entity.FeedbackPending,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Respond closes a suggestion or complaint with the admin's answer and
// pushes the response back to the sender.
func (s *FeedbackService) Respond(id uint, response string) (*entity.Feedback, error) {
	f, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("feedback")
		}
		return nil, err
	}
	if f.Type == entity.FeedbackNotification {
		return nil, apperr.InvalidRequest("notifications cannot be responded to")
	}

	now := s.now()
	f.Response = response
	f.Status = entity.FeedbackResolved
	f.ResponseAt = &now
	if err := s.Repo.Save(f); err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.Push(f.SenderID, f)
	}
	return f, nil
}

// MyNotifications returns what the employee sees on their bell icon:
// admins see what they sent, everyone else what they received.
func (s *FeedbackService) MyNotifications(employeeID string, isAdmin bool) ([]entity.Feedback, error) {
	if isAdmin {
		return s.Repo.FindBySender(employeeID)
	}
	return s.Repo.FindByRecipient(employeeID)
}

func (s *FeedbackService) ListIssues(pendingOnly bool) ([]entity.Feedback, error) {
	return s.Repo.FindOpenIssues(pendingOnly)
}
