package handlers

import (
	"context"
	"sort"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"crmlite/internal/models"
	"crmlite/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory stores backing the concrete services under test.

type memClientStore struct {
	clients []*models.Client
}

func (m *memClientStore) Insert(_ context.Context, client *models.Client) error {
	cc := *client
	if cc.ID.IsZero() {
		cc.ID = primitive.NewObjectID()
	}
	client.ID = cc.ID
	m.clients = append(m.clients, &cc)
	return nil
}

func (m *memClientStore) List(_ context.Context) ([]*models.Client, error) {
	return m.clients, nil
}

func (m *memClientStore) HighestClientID(_ context.Context) (string, error) {
	highest := ""
	for _, c := range m.clients {
		if c.ClientID > highest {
			highest = c.ClientID
		}
	}
	return highest, nil
}

func (m *memClientStore) Replace(_ context.Context, id primitive.ObjectID, client *models.Client) (*models.Client, error) {
	for _, c := range m.clients {
		if c.ID == id {
			c.Name = client.Name
			c.Email = client.Email
			c.Revenue = client.Revenue
			c.Status = client.Status
			c.Phone = client.Phone
			c.Company = client.Company
			c.Address = client.Address
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

func (m *memClientStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, c := range m.clients {
		if c.ID == id {
			m.clients = append(m.clients[:i], m.clients[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memLeadStore struct {
	leads []*models.Lead
}

func (m *memLeadStore) Insert(_ context.Context, lead *models.Lead) error {
	ll := *lead
	if ll.ID.IsZero() {
		ll.ID = primitive.NewObjectID()
	}
	lead.ID = ll.ID
	m.leads = append(m.leads, &ll)
	return nil
}

func (m *memLeadStore) List(_ context.Context) ([]*models.Lead, error) {
	out := append([]*models.Lead(nil), m.leads...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memLeadStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Lead, error) {
	for _, l := range m.leads {
		if l.ID == id {
			ll := *l
			return &ll, nil
		}
	}
	return nil, nil
}

func (m *memLeadStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, l := range m.leads {
		if l.ID == id {
			m.leads = append(m.leads[:i], m.leads[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type testEnv struct {
	router      *gin.Engine
	clientStore *memClientStore
	leadStore   *memLeadStore
}

// newTestEnv wires real services over in-memory stores and registers
// the CRM routes without auth, the way the frontend sees them.
func newTestEnv() *testEnv {
	clientStore := &memClientStore{}
	leadStore := &memLeadStore{}

	clientService := services.NewClientService(clientStore, nil)
	leadService := services.NewLeadService(leadStore, clientService)

	clientHandler := NewClientHandler(clientService)
	leadHandler := NewLeadHandler(leadService)

	r := gin.New()
	api := r.Group("/api")
	clients := api.Group("/clients")
	{
		clients.GET("/", clientHandler.List)
		clients.POST("/", clientHandler.Create)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}
	leads := api.Group("/leads")
	{
		leads.GET("/", leadHandler.List)
		leads.POST("/", leadHandler.Create)
		leads.DELETE("/:id", leadHandler.Delete)
		leads.POST("/convert/:id", leadHandler.Convert)
	}

	return &testEnv{router: r, clientStore: clientStore, leadStore: leadStore}
}
