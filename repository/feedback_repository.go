package repository

import (
	"canteen/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(f *entity.Feedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) Save(f *entity.Feedback) error {
	return r.DB.Save(f).Error
}

func (r *FeedbackRepository) FindByID(id uint) (*entity.Feedback, error) {
	var f entity.Feedback
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) FindByRecipient(employeeID string) ([]entity.Feedback, error) {
	var items []entity.Feedback
	err := r.DB.
		Where("recipient_id = ?", employeeID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *FeedbackRepository) FindBySender(employeeID string) ([]entity.Feedback, error) {
	var items []entity.Feedback
	err := r.DB.
		Where("sender_id = ?", employeeID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// FindOpenIssues lists suggestions and complaints, optionally only the
// unresolved ones.
func (r *FeedbackRepository) FindOpenIssues(pendingOnly bool) ([]entity.Feedback, error) {
	q := r.DB.
		Where("type IN ?", []entity.FeedbackType{entity.FeedbackSuggestion, entity.FeedbackComplaint}).
		Order("created_at DESC")
	if pendingOnly {
		q = q.Where("status = ?", entity.FeedbackPending)
	}
	var items []entity.Feedback
	err := q.Find(&items).Error
	return items, err
}
