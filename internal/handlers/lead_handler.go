package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crmlite/internal/models"
	"crmlite/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

type leadPayload struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required"`
	HowDidYouFindOut string `json:"howDidYouFindOut"`
	Phone            string `json:"phone"`
	Company          string `json:"company"`
}

// @Summary      List leads
// @Description  All leads, newest first
// @Tags         Leads
// @Produce      json
// @Success      200  {array}   models.Lead
// @Failure      500  {object}  map[string]string
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	c.JSON(http.StatusOK, leads)
}

// @Summary      Create a lead
// @Tags         Leads
// @Accept       json
// @Produce      json
// @Param        lead  body      leadPayload  true  "Lead fields"
// @Success      201   {object}  models.Lead
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req leadPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := &models.Lead{
		Name:             req.Name,
		Email:            req.Email,
		HowDidYouFindOut: req.HowDidYouFindOut,
		Phone:            req.Phone,
		Company:          req.Company,
	}
	if err := h.Service.Create(c.Request.Context(), lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// @Summary      Delete a lead
// @Tags         Leads
// @Produce      json
// @Param        id   path      string  true  "Lead id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}

// @Summary      Convert a lead to a client
// @Description  Creates an Active client from the lead's contact fields and removes the lead
// @Tags         Leads
// @Produce      json
// @Param        id   path      string  true  "Lead id"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /leads/convert/{id} [post]
func (h *LeadHandler) Convert(c *gin.Context) {
	client, err := h.Service.ConvertToClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "lead not found"})
		case errors.Is(err, services.ErrClientLimitReached):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Lead converted to client successfully",
		"client":  client,
	})
}
