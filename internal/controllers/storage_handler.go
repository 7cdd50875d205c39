package controllers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"hualien-aid/dto"
	"hualien-aid/internal/storage"
)

// StorageHandler serves objects of a bucket that has no public endpoint of
// its own.
type StorageHandler struct {
	Bucket storage.Bucket
}

// GET /storage/:bucket/images/location-1700000000000-0_1700000000000.jpg
func (h *StorageHandler) Get(c *fiber.Ctx) error {
	if c.Params("bucket") != h.Bucket.Name() {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "bucket not found"})
	}
	key := c.Params("*")
	if key == "" {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "object not found"})
	}

	body, contentType, err := h.Bucket.Open(c.UserContext(), key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "object not found"})
	}
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=31536000, immutable")
	return c.SendStream(body)
}
