package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmlite/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newStatsServer(t *testing.T, clientsCode int, clients []models.Client, leadsCode int, leads []models.Lead) *httptest.Server {
	t.Helper()
	r := gin.New()
	r.GET("/api/clients/", func(c *gin.Context) {
		if clientsCode != http.StatusOK {
			c.JSON(clientsCode, gin.H{"error": "boom"})
			return
		}
		c.JSON(http.StatusOK, clients)
	})
	r.GET("/api/leads/", func(c *gin.Context) {
		if leadsCode != http.StatusOK {
			c.JSON(leadsCode, gin.H{"error": "boom"})
			return
		}
		c.JSON(http.StatusOK, leads)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetDashboardStats(t *testing.T) {
	clients := []models.Client{
		{Name: "A", Email: "a@example.com", Revenue: 100, Status: models.ClientStatusActive},
		{Name: "B", Email: "b@example.com", Revenue: 50, Status: models.ClientStatusInactive},
	}
	leads := []models.Lead{
		{Name: "L1", Email: "l1@example.com"},
		{Name: "L2", Email: "l2@example.com"},
		{Name: "L3", Email: "l3@example.com"},
	}
	srv := newStatsServer(t, http.StatusOK, clients, http.StatusOK, leads)

	stats := New(srv.URL).GetDashboardStats(context.Background())
	assert.Equal(t, 2, stats.TotalClients)
	assert.Equal(t, 3, stats.TotalLeads)
	assert.Equal(t, 1, stats.ActiveClients)
	assert.Equal(t, 150.0, stats.TotalRevenue)
	assert.Equal(t, "Online", stats.Health.Clients)
	assert.Equal(t, "Online", stats.Health.Leads)
}

func TestGetDashboardStatsDegraded(t *testing.T) {
	srv := newStatsServer(t, http.StatusInternalServerError, nil, http.StatusOK, []models.Lead{{Name: "L"}})

	stats := New(srv.URL).GetDashboardStats(context.Background())
	assert.Equal(t, 0, stats.TotalClients)
	assert.Equal(t, 0, stats.TotalLeads)
	assert.Equal(t, 0, stats.ActiveClients)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, "Offline", stats.Health.Clients)
	assert.Equal(t, "Online", stats.Health.Leads)
}

func TestListsDegradeToEmpty(t *testing.T) {
	srv := newStatsServer(t, http.StatusInternalServerError, nil, http.StatusInternalServerError, nil)
	c := New(srv.URL)

	clients := c.ListClients(context.Background())
	assert.NotNil(t, clients)
	assert.Empty(t, clients)

	leads := c.ListLeads(context.Background())
	assert.NotNil(t, leads)
	assert.Empty(t, leads)
}

func TestListsDegradeWhenServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url)
	assert.Empty(t, c.ListClients(context.Background()))
	assert.Empty(t, c.ListLeads(context.Background()))
}

func TestMutationsPropagateErrors(t *testing.T) {
	r := gin.New()
	r.POST("/api/clients/", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client limit (999) reached"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	_, err := New(srv.URL).CreateClient(context.Background(), ClientInput{Name: "X", Email: "x@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestConvertLeadParsesClient(t *testing.T) {
	r := gin.New()
	r.POST("/api/leads/convert/:id", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Lead converted to client successfully",
			"client": models.Client{
				ClientID: "003",
				Name:     "Sam",
				Email:    "sam@example.com",
				Status:   models.ClientStatusActive,
			},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := New(srv.URL).ConvertLead(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "003", client.ClientID)
	assert.Equal(t, models.ClientStatusActive, client.Status)
}

func TestBearerTokenIsSent(t *testing.T) {
	var got string
	r := gin.New()
	r.GET("/api/clients/", func(c *gin.Context) {
		got = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, []models.Client{})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok123")
	c.ListClients(context.Background())
	assert.Equal(t, "Bearer tok123", got)
}
