package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"advocates/internal/service"
)

// ListAdvocates godoc
// @Summary      Search advocates
// @Description  Case-insensitive substring search over name, city, degree, specialties and years of experience, paginated by page and limit.
// @Tags         advocates
// @Produce      json
// @Param        search  query     string  false  "substring to match"
// @Param        page    query     int     false  "page number, starts at 1"  default(1)
// @Param        limit   query     int     false  "page size, 1 to 100"       default(10)
// @Success      200     {object}  model.AdvocatePage
// @Failure      500     {object}  errorPayload
// @Router       /api/advocates [get]
func ListAdvocates(svc service.AdvocateService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := service.ParseSearchParams(c.Query("search"), c.Query("page"), c.Query("limit"))

		res, err := svc.Search(c.UserContext(), params)
		if err != nil {
			log.Error("search advocates failed",
				zap.String("request_id", requestIDFromCtx(c)),
				zap.String("search", params.Search),
				zap.Int("page", params.Page),
				zap.Int("limit", params.Limit),
				zap.Error(err),
			)
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
