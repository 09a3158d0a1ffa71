package handlers

import (
	"net/http"
	"strconv"

	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedHandler handles HTTP requests for the dashboard feed
type FeedHandler struct {
	service  service.FeedServiceInterface
	resolver SessionResolver
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(service service.FeedServiceInterface, resolver SessionResolver) *FeedHandler {
	return &FeedHandler{service: service, resolver: resolver}
}

// GetFeed handles GET /api/v1/feed
// @Summary Get the dashboard feed
// @Description Get upcoming incomplete activities merged with open tickets assigned to the caller
// @Tags feed
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of items" default(20)
// @Success 200 {object} service.FeedResponse "Merged feed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	feed, err := h.service.GetFeed(sc, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get feed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// GetBadgeCounts handles GET /api/v1/feed/badges
// @Summary Get badge counts
// @Description Get the counts behind the dashboard badges; safe to poll, pure read
// @Tags feed
// @Accept json
// @Produce json
// @Success 200 {object} service.BadgeCountsResponse "Badge counts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /feed/badges [get]
func (h *FeedHandler) GetBadgeCounts(c *gin.Context) {
	sc, ok := resolveScope(c, h.resolver)
	if !ok {
		return
	}

	counts, err := h.service.GetBadgeCounts(sc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get badge counts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, counts)
}
