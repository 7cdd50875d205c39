package controllers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"hualien-aid/dto"
	"hualien-aid/internal/board"
)

// AppConfig is the Fiber configuration the API runs with. Request values
// are immutable: rows kept on the boards outlive the request.
func AppConfig() fiber.Config {
	return fiber.Config{
		ErrorHandler: ErrorHandler,
		Immutable:    true,
		BodyLimit:    32 * 1024 * 1024,
	}
}

// ErrorHandler renders every error that escapes a handler as dto.ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
}

// syncFailure maps a board.Syncer error. notice is the message shown when
// the remote store refused the write.
func syncFailure(c *fiber.Ctx, err error, notice string) error {
	switch {
	case errors.Is(err, board.ErrUnknownID):
		return c.Status(http.StatusNotFound).JSON(dto.ErrorResponse{Error: "not found"})
	case errors.Is(err, board.ErrBadIndex):
		return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: "index out of range"})
	case errors.Is(err, board.ErrUploadFailed):
		return c.Status(http.StatusBadGateway).JSON(dto.ErrorResponse{Error: board.NoticeUploadFailed})
	case errors.Is(err, board.ErrRemote):
		return c.Status(http.StatusBadGateway).JSON(dto.ErrorResponse{Error: notice})
	default:
		return err
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}
