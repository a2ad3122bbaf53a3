package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// GET /catalog
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"slots": h.catalog.All(),
		"stats": h.catalog.Stats(),
	})
}

// GET /catalog/:slot
func (h *Handler) GetSlot(c *gin.Context) {
	slot, err := ParseSlot(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	items, err := h.catalog.Slice(slot)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slot":  slot,
		"items": items,
	})
}
