// Package apiclient wraps the REST surface for the dashboard UI
// layer. List calls degrade to empty results so the page always
// renders; mutations propagate their errors to the caller.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"crmlite/internal/models"
)

type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New builds a client for the given server, e.g.
// "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// SetToken installs the bearer token used on every request.
func (c *Client) SetToken(token string) { c.token = token }

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		var apiErr apiError
		_ = json.Unmarshal(respBody, &apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Message
		}
		if msg == "" {
			msg = string(respBody)
		}
		return fmt.Errorf("api %s %s: status=%d: %s", method, path, resp.StatusCode, msg)
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) fetchClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := c.do(ctx, http.MethodGet, "/api/clients/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) fetchLeads(ctx context.Context) ([]models.Lead, error) {
	var out []models.Lead
	if err := c.do(ctx, http.MethodGet, "/api/leads/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListClients never fails: on any error it logs and returns an empty
// slice so the table still renders.
func (c *Client) ListClients(ctx context.Context) []models.Client {
	clients, err := c.fetchClients(ctx)
	if err != nil {
		log.Printf("[apiclient] list clients: %v", err)
		return []models.Client{}
	}
	return clients
}

// ListLeads never fails; see ListClients.
func (c *Client) ListLeads(ctx context.Context) []models.Lead {
	leads, err := c.fetchLeads(ctx)
	if err != nil {
		log.Printf("[apiclient] list leads: %v", err)
		return []models.Lead{}
	}
	return leads
}

// ClientInput carries the create/update form fields.
type ClientInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Revenue float64 `json:"revenue"`
	Status  string  `json:"status,omitempty"`
	Phone   string  `json:"phone,omitempty"`
	Company string  `json:"company,omitempty"`
	Address string  `json:"address,omitempty"`
}

func (c *Client) CreateClient(ctx context.Context, in ClientInput) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodPost, "/api/clients/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateClient(ctx context.Context, id string, in ClientInput) (*models.Client, error) {
	var out models.Client
	if err := c.do(ctx, http.MethodPut, "/api/clients/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/clients/"+id, nil, nil)
}

// LeadInput carries the lead capture form fields.
type LeadInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	HowDidYouFindOut string `json:"howDidYouFindOut,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Company          string `json:"company,omitempty"`
}

func (c *Client) CreateLead(ctx context.Context, in LeadInput) (*models.Lead, error) {
	var out models.Lead
	if err := c.do(ctx, http.MethodPost, "/api/leads/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/leads/"+id, nil, nil)
}

type convertResponse struct {
	Message string        `json:"message"`
	Client  models.Client `json:"client"`
}

// ConvertLead promotes a lead and returns the created client.
func (c *Client) ConvertLead(ctx context.Context, id string) (*models.Client, error) {
	var out convertResponse
	if err := c.do(ctx, http.MethodPost, "/api/leads/convert/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Client, nil
}

type StreamHealth struct {
	Clients string `json:"clients"`
	Leads   string `json:"leads"`
}

type DashboardStats struct {
	TotalClients  int          `json:"totalClients"`
	TotalLeads    int          `json:"totalLeads"`
	ActiveClients int          `json:"activeClients"`
	TotalRevenue  float64      `json:"totalRevenue"`
	Health        StreamHealth `json:"dbHealth"`
}

// GetDashboardStats fetches both lists and reduces them to the
// dashboard numbers. A failing fetch zeroes everything and flags the
// stream offline instead of raising.
func (c *Client) GetDashboardStats(ctx context.Context) DashboardStats {
	stats := DashboardStats{
		Health: StreamHealth{Clients: "Online", Leads: "Online"},
	}

	clients, cErr := c.fetchClients(ctx)
	leads, lErr := c.fetchLeads(ctx)
	if cErr != nil || lErr != nil {
		if cErr != nil {
			log.Printf("[apiclient] stats: clients fetch failed: %v", cErr)
			stats.Health.Clients = "Offline"
		}
		if lErr != nil {
			log.Printf("[apiclient] stats: leads fetch failed: %v", lErr)
			stats.Health.Leads = "Offline"
		}
		return stats
	}

	stats.TotalClients = len(clients)
	stats.TotalLeads = len(leads)
	for _, cl := range clients {
		if cl.Status == models.ClientStatusActive {
			stats.ActiveClients++
		}
		stats.TotalRevenue += cl.Revenue
	}
	return stats
}
