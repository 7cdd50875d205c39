package controllers

import (
	"github.com/gofiber/fiber/v2"

	"hualien-aid/dto"
	"hualien-aid/internal/geocode"
	"hualien-aid/internal/models"
)

type CategoryHandler struct{}

// @Summary      Vocabulary
// @Description  Categories, priorities, channel types and statuses with their display styles
// @Tags         meta
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  dto.MetaResp
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	resp := dto.MetaResp{
		ChannelTypes:   []string{},
		CommonSupplies: models.CommonSupplies(),
		MapCenter:      geocode.Center,
	}
	for _, cat := range models.Categories() {
		resp.Categories = append(resp.Categories, dto.EnumResp{Value: string(cat), Style: cat.Style()})
	}
	for _, p := range models.Priorities() {
		resp.Priorities = append(resp.Priorities, dto.EnumResp{Value: string(p), Style: p.Style()})
	}
	for _, t := range models.ChannelTypes() {
		resp.ChannelTypes = append(resp.ChannelTypes, string(t))
	}
	for _, s := range models.ChannelStatuses() {
		resp.ChannelStatuses = append(resp.ChannelStatuses, dto.EnumResp{Value: string(s), Style: s.Style()})
	}
	return c.JSON(resp)
}
