package handlers

import (
	"net/http"

	"carrier-booking-api-server/config"
	"carrier-booking-api-server/internal/services"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	Cfg config.Config
}

// ListServices returns the store's enabled carrier services, or the full
// catalogue with ?all=true.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var listed []services.Service
	if c.Query("all") == "true" {
		listed = services.All()
	} else {
		listed = services.Selected(h.Cfg.Carrier.Services)
	}

	type entry struct {
		Key           string   `json:"key"`
		Name          string   `json:"name"`
		CustomerTypes []string `json:"customerTypes"`
	}
	result := make([]entry, 0, len(listed))
	for _, service := range listed {
		result = append(result, entry{
			Key:           service.Key,
			Name:          service.Name(h.Cfg.Carrier.ServiceName),
			CustomerTypes: service.CustomerTypes,
		})
	}

	c.JSON(http.StatusOK, gin.H{"services": result})
}
