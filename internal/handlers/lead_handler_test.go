package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"crmlite/internal/models"
)

func TestCreateLeadHandler(t *testing.T) {
	env := newTestEnv()

	w := doJSON(t, env.router, http.MethodPost, "/api/leads/",
		`{"name":"Jamie","email":"jamie@example.com","phone":"555-0100"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.LeadSourceWebsite, created.HowDidYouFindOut)
	assert.Equal(t, "Lead", created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateLeadValidation(t *testing.T) {
	env := newTestEnv()

	w := doJSON(t, env.router, http.MethodPost, "/api/leads/", `{"name":"No Mail"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLeadsHandler(t *testing.T) {
	env := newTestEnv()

	w := doJSON(t, env.router, http.MethodGet, "/api/leads/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	base := time.Now()
	for i, name := range []string{"oldest", "newest"} {
		env.leadStore.leads = append(env.leadStore.leads, &models.Lead{
			ID:        primitive.NewObjectID(),
			Name:      name,
			Email:     name + "@example.com",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	w = doJSON(t, env.router, http.MethodGet, "/api/leads/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var leads []models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	require.Len(t, leads, 2)
	assert.Equal(t, "newest", leads[0].Name)
}

func TestDeleteLeadHandler(t *testing.T) {
	env := newTestEnv()

	w := doJSON(t, env.router, http.MethodPost, "/api/leads/",
		`{"name":"Gone","email":"gone@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, env.router, http.MethodDelete, "/api/leads/"+created.ID.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lead deleted successfully")

	w = doJSON(t, env.router, http.MethodDelete, "/api/leads/"+created.ID.Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConvertLeadHandler(t *testing.T) {
	env := newTestEnv()

	w := doJSON(t, env.router, http.MethodPost, "/api/leads/",
		`{"name":"Sam","email":"sam@example.com","company":"Initech"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var lead models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lead))

	w = doJSON(t, env.router, http.MethodPost, "/api/leads/convert/"+lead.ID.Hex(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message string        `json:"message"`
		Client  models.Client `json:"client"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "converted")
	assert.Equal(t, "Sam", resp.Client.Name)
	assert.Equal(t, "Initech", resp.Client.Company)
	assert.Equal(t, models.ClientStatusActive, resp.Client.Status)
	assert.Equal(t, 0.0, resp.Client.Revenue)
	assert.Equal(t, "001", resp.Client.ClientID)

	// the lead is gone, so converting again is a 404
	w = doJSON(t, env.router, http.MethodPost, "/api/leads/convert/"+lead.ID.Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, env.clientStore.clients, 1)
}
