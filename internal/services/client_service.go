package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"crmlite/internal/models"
)

// ClientStore is the primary (document) store for clients.
type ClientStore interface {
	Insert(ctx context.Context, client *models.Client) error
	List(ctx context.Context) ([]*models.Client, error)
	HighestClientID(ctx context.Context) (string, error)
	Replace(ctx context.Context, id primitive.ObjectID, client *models.Client) (*models.Client, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// LegacySource is the secondary relational read/delete path. Reads
// are best-effort: the client service swallows every error from it.
type LegacySource interface {
	ListClients(ctx context.Context) ([]*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// maxClientID is the last assignable display id.
const maxClientID = 999

type ClientService struct {
	store  ClientStore
	legacy LegacySource // nil when the legacy source is disabled
}

func NewClientService(store ClientStore, legacy LegacySource) *ClientService {
	return &ClientService{store: store, legacy: legacy}
}

// List merges primary and legacy records. Primary records get the
// MongoDB source tag and a "N/A" display id when none was assigned.
// A failing legacy source contributes nothing and never fails the
// call.
func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	primary, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*models.Client, 0, len(primary))
	for _, c := range primary {
		cc := *c
		cc.Source = models.SourceMongo
		if cc.ClientID == "" {
			cc.ClientID = "N/A"
		}
		out = append(out, &cc)
	}

	if s.legacy != nil {
		legacyRows, err := s.legacy.ListClients(ctx)
		if err != nil {
			log.Printf("[clients][list] legacy source unavailable, continuing without it: %v", err)
		} else {
			out = append(out, legacyRows...)
		}
	}
	return out, nil
}

// NextClientID allocates the next sequential display id. The read and
// the later insert are not transactional; the unique index on
// clientId catches the rare lost race as an insert error.
func (s *ClientService) NextClientID(ctx context.Context) (string, error) {
	highest, err := s.store.HighestClientID(ctx)
	if err != nil {
		return "", err
	}
	next := 1
	if highest != "" {
		if n, err := strconv.Atoi(highest); err == nil {
			next = n + 1
		}
	}
	if next > maxClientID {
		return "", ErrClientLimitReached
	}
	return fmt.Sprintf("%03d", next), nil
}

func (s *ClientService) Create(ctx context.Context, client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(client.Email) == "" {
		return fmt.Errorf("email is required")
	}

	id, err := s.NextClientID(ctx)
	if err != nil {
		return err
	}
	client.ClientID = id
	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}
	client.Source = models.SourceMongo
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now()
	}
	return s.store.Insert(ctx, client)
}

// Update replaces the editable fields of a primary-store client. Ids
// that do not parse as document-store ids belong to the legacy
// source, which cannot be edited.
func (s *ClientService) Update(ctx context.Context, id string, client *models.Client) (*models.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrLegacyNotSupported
	}
	updated, err := s.store.Replace(ctx, oid, client)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes a client from whichever source its id addresses and
// reports the source it was removed from.
func (s *ClientService) Delete(ctx context.Context, id string) (string, error) {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		existed, err := s.store.Delete(ctx, oid)
		if err != nil {
			return "", err
		}
		if !existed {
			return "", ErrNotFound
		}
		return models.SourceMongo, nil
	}

	if s.legacy == nil {
		return "", ErrNotFound
	}
	if err := s.legacy.DeleteClient(ctx, id); err != nil {
		return "", err
	}
	return models.SourceLegacy, nil
}
