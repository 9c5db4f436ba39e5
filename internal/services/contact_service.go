package services

import (
	"log"

	"portfolio/internal/models"
	"portfolio/internal/storage"
)

// ContactPublisher publishes contact-form events to the message broker.
// *rabbitmq.Client satisfies it; tests substitute a mock.
type ContactPublisher interface {
	PublishContactReceived(event map[string]interface{}) error
}

// ContactService handles business logic for contact submissions.
type ContactService struct {
	store     storage.Store
	publisher ContactPublisher // nil when no broker is configured
}

// NewContactService creates a new ContactService.
func NewContactService(store storage.Store, publisher ContactPublisher) *ContactService {
	return &ContactService{
		store:     store,
		publisher: publisher,
	}
}

// ListContacts retrieves all submissions, newest first.
func (s *ContactService) ListContacts() ([]models.ContactSubmission, error) {
	return s.store.GetContacts()
}

// CreateContact stores a public submission and publishes a contact.received
// event. A publish failure does not fail the submission; the record is
// already durable at that point.
func (s *ContactService) CreateContact(c *models.ContactSubmission) (*models.ContactSubmission, error) {
	created, err := s.store.CreateContact(c)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"event":     "contact.received",
			"contactID": created.ID,
			"name":      created.Name,
			"email":     created.Email,
			"subject":   created.Subject,
			"createdAt": created.CreatedAt,
		}
		if pubErr := s.publisher.PublishContactReceived(event); pubErr != nil {
			log.Printf("Failed to publish contact event for submission %d: %v", created.ID, pubErr)
		}
	}

	return created, nil
}

// UpdateContactStatus replaces the status of a submission. Unknown ids are
// ignored.
func (s *ContactService) UpdateContactStatus(id int, status string) error {
	return s.store.UpdateContactStatus(id, status)
}
