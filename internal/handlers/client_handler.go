package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"crmlite/internal/models"
	"crmlite/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

type clientPayload struct {
	Name    string      `json:"name" binding:"required"`
	Email   string      `json:"email" binding:"required"`
	Revenue interface{} `json:"revenue"`
	Status  string      `json:"status"`
	Phone   string      `json:"phone"`
	Company string      `json:"company"`
	Address string      `json:"address"`
}

// @Summary      List clients
// @Description  Returns all clients from the primary store merged with the legacy source (best-effort)
// @Tags         Clients
// @Produce      json
// @Success      200  {array}   models.Client
// @Failure      500  {object}  map[string]string
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// @Summary      Create a client
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        client  body      clientPayload  true  "Client fields"
// @Success      201     {object}  models.Client
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req clientPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := &models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Revenue: coerceRevenue(req.Revenue),
		Status:  req.Status,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
	}
	if err := h.Service.Create(c.Request.Context(), client); err != nil {
		if errors.Is(err, services.ErrClientLimitReached) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// @Summary      Update a client
// @Description  Full-field update of a primary-store client. Legacy ids are rejected.
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Client id"
// @Param        client  body      clientPayload  true  "Client fields"
// @Success      200     {object}  models.Client
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	// reject legacy ids before looking at the body
	if _, err := primitive.ObjectIDFromHex(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrLegacyNotSupported.Error()})
		return
	}

	var req clientPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := &models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Revenue: coerceRevenue(req.Revenue),
		Status:  req.Status,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
	}
	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), client)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLegacyNotSupported):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a client
// @Tags         Clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	source, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Client deleted from %s", source)})
}
