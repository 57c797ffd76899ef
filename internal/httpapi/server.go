// Package httpapi serves the move oracle over HTTP. The server is
// stateless: every request carries the position it asks about.
package httpapi

import (
	stderrors "errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// AppName is reported in the Server header.
const AppName = "checkers-oracle"

// New builds the fiber app with middleware and routes. Access log lines go
// to logOut when cfg.AccessLog is set.
func New(cfg *config.ServerConfig, logOut io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               AppName,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, " + RequestIDHeader,
		AllowMethods:  "GET, POST, OPTIONS",
		ExposeHeaders: RequestIDHeader,
	}))
	if cfg.AccessLog && logOut != nil {
		app.Use(logger.New(logger.Config{
			Output: logOut,
			Format: "${time} ${respHeader:" + RequestIDHeader + "} ${status} ${method} ${path} ${latency}\n",
		}))
	}

	api := app.Group("/api")
	api.Get("/health", Health)
	api.Post("/moves", Moves)
	api.Post("/replay", Replay)
	api.Post("/render", Render)

	app.Use("/ws", WebSocketUpgrade())
	app.Get("/ws/moves", websocket.New(Stream))

	return app
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	RequestID string `json:"requestId"`
	Error     string `json:"error"`
	Status    int    `json:"status"`
	Ply       int    `json:"ply,omitempty"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case stderrors.As(err, &fe):
		return fe.Code
	case stderrors.Is(err, errors.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrInvalidPosition),
		stderrors.Is(err, errors.ErrInvalidLocationText),
		stderrors.Is(err, errors.ErrInvalidSlot):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func newErrorResponse(id string, err error) errorResponse {
	resp := errorResponse{RequestID: id, Error: err.Error(), Status: statusFor(err)}
	var me *errors.MoveError
	if stderrors.As(err, &me) {
		resp.Ply = me.Ply
	}
	return resp
}

func errorHandler(c *fiber.Ctx, err error) error {
	resp := newErrorResponse(requestID(c), err)
	return c.Status(resp.Status).JSON(resp)
}
