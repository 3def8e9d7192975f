package handlers

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"crmlite/internal/models"
	"crmlite/internal/pdf"
	"crmlite/internal/services"
)

type ReportHandler struct {
	Clients   *services.ClientService
	Generator pdf.Generator
}

func NewReportHandler(clients *services.ClientService, generator pdf.Generator) *ReportHandler {
	return &ReportHandler{Clients: clients, Generator: generator}
}

// @Summary      Client summary report
// @Description  Renders the current client list and revenue totals as a PDF
// @Tags         Reports
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  map[string]string
// @Router       /reports/clients.pdf [get]
func (h *ReportHandler) ClientsPDF(c *gin.Context) {
	clients, err := h.Clients.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := pdf.ClientReportData{GeneratedAt: time.Now()}
	for _, cl := range clients {
		data.Rows = append(data.Rows, pdf.ClientReportRow{
			ClientID: cl.ClientID,
			Name:     cl.Name,
			Email:    cl.Email,
			Status:   cl.Status,
			Revenue:  cl.Revenue,
		})
		if cl.Status == models.ClientStatusActive {
			data.ActiveCount++
		}
		data.TotalRevenue += cl.Revenue
	}

	path, err := h.Generator.GenerateClientReport(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
