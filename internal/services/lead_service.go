package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"crmlite/internal/models"
)

// LeadStore is the document store for leads. List returns newest
// first.
type LeadStore interface {
	Insert(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context) ([]*models.Lead, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// Notifier receives lead lifecycle events. Notification failures are
// logged and never fail the operation that triggered them.
type Notifier interface {
	LeadCreated(lead *models.Lead) error
	LeadConverted(lead *models.Lead, client *models.Client) error
}

type LeadService struct {
	store     LeadStore
	clients   *ClientService
	notifiers []Notifier
}

func NewLeadService(store LeadStore, clients *ClientService, notifiers ...Notifier) *LeadService {
	return &LeadService{store: store, clients: clients, notifiers: notifiers}
}

func (s *LeadService) Create(ctx context.Context, lead *models.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(lead.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if lead.HowDidYouFindOut == "" {
		lead.HowDidYouFindOut = models.LeadSourceWebsite
	}
	if lead.Status == "" {
		lead.Status = "Lead"
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	if err := s.store.Insert(ctx, lead); err != nil {
		return err
	}

	for _, n := range s.notifiers {
		if err := n.LeadCreated(lead); err != nil {
			log.Printf("[leads][create] notification failed: %v", err)
		}
	}
	return nil
}

func (s *LeadService) List(ctx context.Context) ([]*models.Lead, error) {
	return s.store.List(ctx)
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	existed, err := s.store.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

// ConvertToClient promotes a lead into a client: the next display id
// is allocated through the same path as direct creation, the contact
// fields are copied onto a new Active client with zero revenue, and
// the lead is removed.
//
// The insert and the delete are two separate writes. A crash between
// them leaves the already-promoted lead behind as an orphan; the next
// convert call on it would create a second client.
func (s *LeadService) ConvertToClient(ctx context.Context, id string) (*models.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	lead, err := s.store.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound
	}

	client := &models.Client{
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Company: lead.Company,
		Status:  models.ClientStatusActive,
		Revenue: 0,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	if _, err := s.store.Delete(ctx, oid); err != nil {
		// The client already exists; report the failure instead of
		// pretending the conversion did not happen.
		return nil, fmt.Errorf("client created but lead cleanup failed: %w", err)
	}

	for _, n := range s.notifiers {
		if err := n.LeadConverted(lead, client); err != nil {
			log.Printf("[leads][convert] notification failed: %v", err)
		}
	}
	return client, nil
}
