package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hualien-aid/internal/services"
)

const imagesField = "images"

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm)
}

// uploadsFrom reads the "images" files of a multipart request. Anything else
// has no files.
func uploadsFrom(c *fiber.Ctx) ([]services.FileUpload, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	headers := form.File[imagesField]
	out := make([]services.FileUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		out = append(out, services.FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Data:        data,
		})
	}
	return out, nil
}
