package integrity

import (
	"errors"

	"wardrobe/core/logger"
	"wardrobe/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/mirror", h.HandleMirrorCheck)
	group.Get("/upstream", h.HandleUpstreamCheck)
	group.Get("/registry", h.HandleRegistryCheck)
	group.Get("/coverage", h.HandleCoverageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Mirror, Upstream, Registry). The upstream check downloads every feed document.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if mirror, err := h.service.CheckMirror(ctx); err != nil {
		report["mirror"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["mirror"] = mirror
	}

	if upstream, err := h.service.CheckUpstream(ctx); err != nil {
		report["upstream"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["upstream"] = upstream
	}

	if schema, err := h.service.CheckRegistry(); err != nil {
		report["registry"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["registry"] = schema
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks that the mirror bucket and its feed folder exist. Optionally creates them.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	switch {
	case fix && errors.Is(err, checks.ErrBucketMissing):
		// Without a bucket every folder is missing; FixStructure creates both.
		missing = checks.RequiredFolders(h.service.prefix)
	case err != nil:
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleMirrorCheck checks the mirrored feed documents.
// @Summary Check Feed Mirror
// @Description Verify that figuredata.xml, figuremap.xml and furnidata.json are present in the mirror bucket. With fix, copies them from the live feeds.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Copy missing documents from upstream"
// @Success 200 {object} checks.MirrorReport "Mirror Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/mirror [get]
func (h *Handler) HandleMirrorCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckMirror(c.Context())
	if err != nil {
		l.Error("Mirror check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(report.Missing) > 0 && c.Query("fix") == "true" {
		l.Info("Mirroring feed documents", zap.Strings("missing", report.Missing))
		written, err := h.service.FixMirror(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to mirror feeds",
				"details": err.Error(),
				"missing": report.Missing,
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  written,
		})
	}

	return c.JSON(report)
}

// HandleUpstreamCheck checks the live feeds.
// @Summary Check Upstream Feeds
// @Description Resolve the feed base location and fetch and parse every feed document.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.UpstreamReport "Upstream Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/upstream [get]
func (h *Handler) HandleUpstreamCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting upstream feed check")

	report, err := h.service.CheckUpstream(c.Context())
	if err != nil {
		l.Error("Upstream check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if report.Status != "ok" {
		l.Warn("Upstream feeds unhealthy", zap.String("error", report.Error))
	}
	return c.JSON(report)
}

// HandleRegistryCheck checks the clothing registry schema.
// @Summary Check Registry Schema
// @Description Checks that the emulator's catalog_clothing table matches the expected model.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Registry Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/registry [get]
func (h *Handler) HandleRegistryCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting registry schema check")

	report, err := h.service.CheckRegistry()
	if err != nil {
		l.Error("Registry schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleCoverageCheck reconciles clothing classnames.
// @Summary Check Clothing Coverage
// @Description Compares registry classnames, furnidata clothing records and the classnames the live catalog links to items. With issues=true only keys with a gap or mismatch are listed.
// @Tags integrity
// @Produce json
// @Param issues query boolean false "Only list keys with issues"
// @Success 200 {object} reconcile.Report "Coverage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/coverage [get]
func (h *Handler) HandleCoverageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting clothing coverage check")

	report, err := h.service.CheckCoverage(c.Context())
	if err != nil {
		l.Error("Coverage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if c.Query("issues") == "true" {
		report.Results = report.Issues()
	}
	return c.JSON(report)
}
