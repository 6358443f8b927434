package clothing

import (
	"errors"
	"strings"

	"wardrobe/core/logger"
	"wardrobe/feature/clothing/imaging"
	"wardrobe/feature/clothing/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the clothing catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ItemsResponse is a filtered item listing.
type ItemsResponse struct {
	Source models.Source        `json:"source"`
	Count  int                  `json:"count"`
	Items  []models.CatalogItem `json:"items"`
}

// RegisterRoutes registers the clothing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/clothing")
	group.Get("/", h.HandleSummary)
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/items", h.HandleItems)
	group.Get("/items/:category/:figureId", h.HandleItem)
	group.Get("/items/:category/:figureId/avatar", h.HandleAvatar)
	group.Get("/cache", h.HandleCacheStats)
	group.Delete("/cache", h.HandleCachePurge)
}

// HandleSummary returns catalog counts and provenance.
// @Summary Catalog Summary
// @Description Item counts per category and tier, and where the catalog came from (live, cache or fallback).
// @Tags clothing
// @Produce json
// @Success 200 {object} models.Summary "Catalog Summary"
// @Router /clothing [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	return c.JSON(h.service.Catalog(c.Context()).Summary())
}

// HandleRefresh rebuilds the catalog from the feeds.
// @Summary Refresh Catalog
// @Description Drop cached feed documents and rebuild the catalog.
// @Tags clothing
// @Produce json
// @Success 200 {object} models.Summary "Catalog Summary"
// @Router /clothing/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	summary := h.service.Refresh(c.Context()).Summary()
	l.Info("Catalog refreshed",
		zap.String("source", string(summary.Source)),
		zap.Int("items", summary.Total))
	return c.JSON(summary)
}

// HandleItems lists catalog items.
// @Summary List Items
// @Description List clothing items, optionally filtered. Unisex items match either gender.
// @Tags clothing
// @Produce json
// @Param category query string false "Category code (hd, hr, ha, he, ea, fa, ch, cc, cp, ca, lg, sh, wa)"
// @Param gender query string false "Gender (M, F, U)"
// @Param tier query string false "Tier (normal, club, sellable, rare, limited, collectible)"
// @Success 200 {object} ItemsResponse "Items"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /clothing/items [get]
func (h *Handler) HandleItems(c *fiber.Ctx) error {
	var f models.Filter
	if raw := c.Query("category"); raw != "" {
		category, ok := models.ParseCategory(raw)
		if !ok {
			return badRequest(c, "unknown category: "+raw)
		}
		f.Category = category
	}
	if raw := c.Query("gender"); raw != "" {
		gender, ok := models.LookupGender(raw)
		if !ok {
			return badRequest(c, "unknown gender: "+raw)
		}
		f.Gender = gender
	}
	if raw := c.Query("tier"); raw != "" {
		tier, ok := models.ParseTier(raw)
		if !ok {
			return badRequest(c, "unknown tier: "+raw)
		}
		f.Tier = tier
	}

	items, source := h.service.Items(c.Context(), f)
	return c.JSON(ItemsResponse{Source: source, Count: len(items), Items: items})
}

// HandleItem returns one item with its default previews.
// @Summary Get Item
// @Description Get a clothing item by category and figure id, with avatar and thumbnail URLs in its default colors.
// @Tags clothing
// @Produce json
// @Param category path string true "Category code"
// @Param figureId path string true "Figure part id"
// @Success 200 {object} Preview "Item"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /clothing/items/{category}/{figureId} [get]
func (h *Handler) HandleItem(c *fiber.Ctx) error {
	return h.preview(c, PreviewRequest{})
}

// HandleAvatar resolves colors and rendering URLs for an item.
// @Summary Render Item
// @Description Resolve the requested colors and build avatar and thumbnail URLs. An unavailable color is replaced and reported as a warning.
// @Tags clothing
// @Produce json
// @Param category path string true "Category code"
// @Param figureId path string true "Figure part id"
// @Param color query string false "Primary color id"
// @Param color2 query string false "Secondary color id (duotone items)"
// @Param gender query string false "Mannequin gender (M, F)"
// @Param size query string false "Size (s, m, l)"
// @Param direction query string false "Body direction (0-7)"
// @Param head_direction query string false "Head direction (0-7)"
// @Param action query string false "Action"
// @Param gesture query string false "Gesture"
// @Success 200 {object} Preview "Preview"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /clothing/items/{category}/{figureId}/avatar [get]
func (h *Handler) HandleAvatar(c *fiber.Ctx) error {
	req := PreviewRequest{
		Color:  c.Query("color"),
		Color2: c.Query("color2"),
		Pose: imaging.Pose{
			Size:          c.Query("size"),
			Direction:     c.Query("direction"),
			HeadDirection: c.Query("head_direction"),
			Action:        c.Query("action"),
			Gesture:       c.Query("gesture"),
		},
	}
	if raw := c.Query("gender"); raw != "" {
		gender, ok := models.LookupGender(raw)
		if !ok {
			return badRequest(c, "unknown gender: "+raw)
		}
		req.Gender = gender
	}
	return h.preview(c, req)
}

func (h *Handler) preview(c *fiber.Ctx, req PreviewRequest) error {
	l := logger.WithRayID(h.service.logger, c)

	category, ok := models.ParseCategory(c.Params("category"))
	if !ok {
		return badRequest(c, "unknown category: "+c.Params("category"))
	}
	figureID := strings.TrimSpace(c.Params("figureId"))
	key := models.Key{Category: category, FigureID: figureID}

	p, err := h.service.Preview(c.Context(), key, req)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Preview failed", zap.String("item", key.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(p)
}

// HandleCacheStats returns the cache counters.
// @Summary Cache Stats
// @Description Entry count, hits, misses, fetches and failures of the feed cache.
// @Tags clothing
// @Produce json
// @Success 200 {object} cache.Stats "Stats"
// @Router /clothing/cache [get]
func (h *Handler) HandleCacheStats(c *fiber.Ctx) error {
	return c.JSON(h.service.CacheStats())
}

// HandleCachePurge drops every cached value.
// @Summary Purge Cache
// @Description Drop every cached feed document and catalog. The next request rebuilds from the feeds.
// @Tags clothing
// @Produce json
// @Success 200 {object} cache.Stats "Stats after purge"
// @Router /clothing/cache [delete]
func (h *Handler) HandleCachePurge(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	h.service.PurgeCache()
	l.Info("Cache purged")
	return c.JSON(h.service.CacheStats())
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}
