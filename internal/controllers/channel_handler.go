package controllers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hualien-aid/dto"
	"hualien-aid/internal/board"
	"hualien-aid/internal/models"
)

type ChannelHandler struct {
	Sync *board.Syncer
}

// GET /api/channels?type=求助&status=進行中

// @Summary      Bulletin posts
// @Description  Posts of one tab, optionally narrowed by status; "全部" or no status keeps every status
// @Tags         channels
// @Produce      json
// @Security     ApiKeyAuth
// @Param        type    query  string  false  "求助, 快訊 or 一般"
// @Param        status  query  string  false  "進行中, 已解決, 已過期 or 全部"
// @Success      200  {array}   models.Channel
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/channels [get]
func (h *ChannelHandler) List(c *fiber.Ctx) error {
	t := models.ChannelType(strings.TrimSpace(c.Query("type")))
	if t != "" && !t.Valid() {
		return badRequest(c, "unknown channel type")
	}
	status := models.ChannelStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && status != board.StatusAll && !status.Valid() {
		return badRequest(c, "unknown status")
	}
	return c.JSON(h.Sync.Posts.ByTab(t, status))
}

// @Summary      One post
// @Tags         channels
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "Channel ID"
// @Success      200  {object}  models.Channel
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/channels/{id} [get]
func (h *ChannelHandler) Get(c *fiber.Ctx) error {
	ch, ok := h.Sync.Posts.Find(c.Params("id"))
	if !ok {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "channel not found"})
	}
	return c.JSON(ch)
}

// @Summary      Create a post
// @Description  JSON body, or multipart form with up to 3 files in "images"; tags are comma separated
// @Tags         channels
// @Accept       json,mpfd
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body  dto.CreateChannelReq  true  "Post"
// @Success      201  {object}  models.Channel
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/channels [post]
func (h *ChannelHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateChannelReq
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

	ch, err := h.Sync.CreateChannel(c.UserContext(), draft, files)
	if err != nil {
		return syncFailure(c, err, board.NoticeSaveFailed)
	}
	return c.Status(http.StatusCreated).JSON(ch)
}

// @Summary      Set post status
// @Tags         channels
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path  string         true  "Channel ID"
// @Param        body  body  dto.StatusReq  true  "進行中, 已解決 or 已過期"
// @Success      200  {object}  models.Channel
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/channels/{id}/status [patch]
func (h *ChannelHandler) SetStatus(c *fiber.Ctx) error {
	var body dto.StatusReq
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	status := models.ChannelStatus(strings.TrimSpace(body.Status))
	if !status.Valid() {
		return badRequest(c, "unknown status")
	}
	ch, err := h.Sync.SetChannelStatus(c.UserContext(), c.Params("id"), status)
	if err != nil {
		return syncFailure(c, err, board.NoticeUpdateFailed)
	}
	return c.JSON(ch)
}

// @Summary      Delete a post
// @Tags         channels
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "Channel ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/channels/{id} [delete]
func (h *ChannelHandler) Delete(c *fiber.Ctx) error {
	if err := h.Sync.RemoveChannel(c.UserContext(), c.Params("id")); err != nil {
		return syncFailure(c, err, board.NoticeRemoveFailed)
	}
	return c.SendStatus(http.StatusNoContent)
}
