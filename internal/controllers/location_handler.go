package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hualien-aid/dto"
	"hualien-aid/internal/board"
	"hualien-aid/internal/models"
	"hualien-aid/internal/utils"
)

type LocationHandler struct {
	Sync *board.Syncer
}

// GET /api/locations?categories=醫療,交通&q=...

// @Summary      Map markers
// @Description  Open markers narrowed by category, or search hits when q is given (q ignores categories)
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        categories  query  string  false  "Comma separated categories"
// @Param        q           query  string  false  "Search text"
// @Success      200  {array}  models.Location
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	f := board.ParseFilters(c.Query("categories"))
	return c.JSON(h.Sync.Markers.Display(c.Query("q"), f))
}

// @Summary      Every marker
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}  models.Location
// @Router       /api/locations/all [get]
func (h *LocationHandler) All(c *fiber.Ctx) error {
	return c.JSON(h.Sync.Markers.Snapshot())
}

// @Summary      Completed markers
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}  models.Location
// @Router       /api/locations/completed [get]
func (h *LocationHandler) Completed(c *fiber.Ctx) error {
	return c.JSON(h.Sync.Markers.Completed())
}

// @Summary      Map markers as GeoJSON
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        categories  query  string  false  "Comma separated categories"
// @Param        q           query  string  false  "Search text"
// @Success      200  {object}  object
// @Router       /api/locations/geojson [get]
func (h *LocationHandler) GeoJSON(c *fiber.Ctx) error {
	f := board.ParseFilters(c.Query("categories"))
	return c.JSON(board.GeoJSON(h.Sync.Markers.Display(c.Query("q"), f)))
}

// @Summary      One marker
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "Location ID"
// @Success      200  {object}  models.Location
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *LocationHandler) Get(c *fiber.Ctx) error {
	loc, ok := h.Sync.Markers.Find(c.Params("id"))
	if !ok {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "location not found"})
	}
	return c.JSON(loc)
}

// @Summary      Directions link
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "Location ID"
// @Success      200  {object}  dto.NavigateResp
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/navigate [get]
func (h *LocationHandler) Navigate(c *fiber.Ctx) error {
	loc, ok := h.Sync.Markers.Find(c.Params("id"))
	if !ok {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "location not found"})
	}
	return c.JSON(dto.NavigateResp{URL: utils.GoogleMapsURL(loc.Position.Lat(), loc.Position.Lng())})
}

// @Summary      Create a marker
// @Description  JSON body, or multipart form with lat, lng and up to 3 files in "images"
// @Tags         locations
// @Accept       json,mpfd
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body  dto.CreateLocationReq  true  "Marker"
// @Success      201  {object}  models.Location
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateLocationReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	draft, err := body.Draft()
	if err != nil {
		return badRequest(c, err.Error())
	}
	files, err := uploadsFrom(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	loc, err := h.Sync.CreateLocation(c.UserContext(), draft, files)
	if err != nil {
		return syncFailure(c, err, board.NoticeSaveFailed)
	}
	return c.Status(http.StatusCreated).JSON(loc)
}

// @Summary      Set marker status
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  string         true  "Location ID"
// @Param        body  body  dto.StatusReq  true  "進行中 or 已完成"
// @Success      200  {object}  models.Location
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/status [patch]
func (h *LocationHandler) SetStatus(c *fiber.Ctx) error {
	var body dto.StatusReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	status := models.LocationStatus(strings.TrimSpace(body.Status))
	if !status.Valid() {
		return badRequest(c, "unknown status")
	}
	loc, err := h.Sync.SetLocationStatus(c.UserContext(), c.Params("id"), status)
	if err != nil {
		return syncFailure(c, err, board.NoticeUpdateFailed)
	}
	return c.JSON(loc)
}

// @Summary      Add a supply
// @Description  Adding an item already on the list changes nothing
// @Tags         locations
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  string         true  "Location ID"
// @Param        body  body  dto.SupplyReq  true  "Item"
// @Success      200  {object}  models.Location
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/supplies [post]
func (h *LocationHandler) AddSupply(c *fiber.Ctx) error {
	var body dto.SupplyReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if strings.TrimSpace(body.Item) == "" {
		return badRequest(c, "item required")
	}
	loc, err := h.Sync.AddSupply(c.UserContext(), c.Params("id"), strings.Clone(body.Item))
	if err != nil {
		return syncFailure(c, err, board.NoticeUpdateFailed)
	}
	return c.JSON(loc)
}

// @Summary      Remove a supply by position
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id     path  string  true  "Location ID"
// @Param        index  path  int     true  "Zero based index"
// @Success      200  {object}  models.Location
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/supplies/{index} [delete]
func (h *LocationHandler) RemoveSupply(c *fiber.Ctx) error {
	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return badRequest(c, "invalid index")
	}
	loc, err := h.Sync.RemoveSupply(c.UserContext(), c.Params("id"), idx)
	if err != nil {
		return syncFailure(c, err, board.NoticeUpdateFailed)
	}
	return c.JSON(loc)
}

// @Summary      Post a message
// @Description  JSON body, or multipart form with up to 3 files in "images"
// @Tags         locations
// @Accept       json,mpfd
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  string          true  "Location ID"
// @Param        body  body  dto.MessageReq  true  "Message"
// @Success      201  {object}  models.Location
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/messages [post]
func (h *LocationHandler) AddMessage(c *fiber.Ctx) error {
	var body dto.MessageReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	draft, err := body.Draft()
	if err != nil {
		return badRequest(c, err.Error())
	}
	files, err := uploadsFrom(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	loc, err := h.Sync.AddMessage(c.UserContext(), c.Params("id"), draft, files)
	if err != nil {
		return syncFailure(c, err, board.NoticeSaveFailed)
	}
	return c.Status(http.StatusCreated).JSON(loc)
}

// @Summary      Attach images
// @Tags         locations
// @Accept       mpfd
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id      path      string  true  "Location ID"
// @Param        images  formData  file    true  "Up to 3 images"
// @Success      200  {object}  models.Location
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/images [post]
func (h *LocationHandler) AddImages(c *fiber.Ctx) error {
	files, err := uploadsFrom(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if len(files) == 0 {
		return badRequest(c, "images required")
	}
	loc, err := h.Sync.AddImages(c.UserContext(), c.Params("id"), files)
	if err != nil {
		return syncFailure(c, err, board.NoticeUpdateFailed)
	}
	return c.JSON(loc)
}

// @Summary      Detach an image by position
// @Tags         locations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id     path  string  true  "Location ID"
// @Param        index  path  int     true  "Zero based index"
// @Success      200  {object}  models.Location
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/images/{index} [delete]
func (h *LocationHandler) RemoveImage(c *fiber.Ctx) error {
	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return badRequest(c, "invalid index")
	}
	loc, err := h.Sync.RemoveImage(c.UserContext(), c.Params("id"), idx)
	if err != nil {
		return syncFailure(c, err, board.NoticeUpdateFailed)
	}
	return c.JSON(loc)
}

// @Summary      Delete a marker
// @Tags         locations
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "Location ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	if err := h.Sync.RemoveLocation(c.UserContext(), c.Params("id")); err != nil {
		return syncFailure(c, err, board.NoticeRemoveFailed)
	}
	return c.SendStatus(http.StatusNoContent)
}
