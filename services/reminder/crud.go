package reminder

import (
	"fmt"
	"time"

	"remindly/models"
	"remindly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ListReminders returns all reminders owned by the caller, date ascending.
func (s *DefaultReminderService) ListReminders(ownerID string) ([]models.Reminder, error) {
	reminders, err := s.Repo.ListByOwner(ownerID)
	if err != nil {
		utils.GetLogger().Error("ListReminders: repo failure", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// CreateReminder validates required fields and persists a new reminder with
// the caller as owner.
func (s *DefaultReminderService) CreateReminder(ownerID string, req CreateReminderRequest) (*models.Reminder, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.EventType == "" {
		return nil, fmt.Errorf("%w: event type is required", ErrValidation)
	}
	if !models.ValidEventType(req.EventType) {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrValidation, req.EventType)
	}
	if req.Date == nil {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	rem := models.Reminder{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Title:     req.Title,
		EventType: req.EventType,
		Date:      *req.Date,
		Notes:     req.Notes,
	}
	if req.Contact != nil {
		rem.Contact = *req.Contact
	}

	if err := s.Repo.Create(&rem); err != nil {
		utils.GetLogger().Error("CreateReminder: repo failure", zap.String("ownerID", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	return &rem, nil
}

// loadOwned loads a reminder by id and verifies the actor owns it.
func (s *DefaultReminderService) loadOwned(actorID, id string) (*models.Reminder, error) {
	rem, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("loadOwned: repo failure", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch reminder: %w", err)
	}
	if rem == nil {
		return nil, ErrNotFound
	}
	if err := authorize(actorID, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// GetReminder retrieves one reminder, enforcing ownership.
func (s *DefaultReminderService) GetReminder(ownerID, id string) (*models.Reminder, error) {
	return s.loadOwned(ownerID, id)
}

// UpdateReminder applies a partial merge: only supplied fields change.
func (s *DefaultReminderService) UpdateReminder(ownerID, id string, req UpdateReminderRequest) (*models.Reminder, error) {
	if _, err := s.loadOwned(ownerID, id); err != nil {
		return nil, err
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		updateFields["title"] = *req.Title
	}
	if req.EventType != nil {
		if !models.ValidEventType(*req.EventType) {
			return nil, fmt.Errorf("%w: unknown event type %q", ErrValidation, *req.EventType)
		}
		updateFields["eventType"] = *req.EventType
	}
	if req.Date != nil {
		updateFields["date"] = *req.Date
	}
	if req.Notes != nil {
		updateFields["notes"] = *req.Notes
	}
	if req.Contact != nil {
		updateFields["contact"] = *req.Contact
	}
	if req.IsCompleted != nil {
		updateFields["isCompleted"] = *req.IsCompleted
	}

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": updateFields}); err != nil {
		utils.GetLogger().Error("UpdateReminder: repo failure", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated reminder: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// DeleteReminder removes a reminder unconditionally once ownership is
// verified. No soft delete, no cascade.
func (s *DefaultReminderService) DeleteReminder(ownerID, id string) error {
	if _, err := s.loadOwned(ownerID, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("DeleteReminder: repo failure", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}
