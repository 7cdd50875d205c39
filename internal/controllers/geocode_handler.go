package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hualien-aid/dto"
	"hualien-aid/internal/geocode"
)

type GeocodeHandler struct {
	Locator *geocode.Locator
}

func placeResp(c geocode.Candidate) dto.PlaceResp {
	return dto.PlaceResp{
		Name:        c.Label(),
		DisplayName: c.DisplayName,
		Lat:         c.Lat,
		Lng:         c.Lng,
		Type:        c.Type,
		Class:       c.Class,
	}
}

// @Summary      Place search
// @Description  Candidates for a search box; an upstream failure yields an empty list
// @Tags         geocode
// @Produce      json
// @Security     ApiKeyAuth
// @Param        q    query  string  true  "Place name"
// @Success      200  {array}   dto.PlaceResp
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/geocode/search [get]
func (h *GeocodeHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return badRequest(c, "q required")
	}
	hits := h.Locator.SearchPlaces(c.UserContext(), q)
	out := make([]dto.PlaceResp, 0, len(hits))
	for _, hit := range hits {
		out = append(out, placeResp(hit))
	}
	return c.JSON(out)
}

// @Summary      Resolve an address
// @Tags         geocode
// @Produce      json
// @Security     ApiKeyAuth
// @Param        address  query  string  true  "Address"
// @Success      200  {object}  dto.PlaceResp
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.GeocodeErrorResponse
// @Router       /api/geocode/resolve [get]
func (h *GeocodeHandler) Resolve(c *fiber.Ctx) error {
	addr := strings.TrimSpace(c.Query("address"))
	if addr == "" {
		return badRequest(c, "address required")
	}
	hit, err := h.Locator.Resolve(c.UserContext(), addr)
	var nm *geocode.NoMatchError
	if errors.As(err, &nm) {
		return c.Status(http.StatusNotFound).JSON(dto.GeocodeErrorResponse{
			Error:       "找不到此地址，請嘗試更具體的地址",
			Suggestions: nm.Suggestions,
		})
	}
	if err != nil {
		return err
	}
	return c.JSON(placeResp(hit))
}
