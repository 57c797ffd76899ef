package httpapi

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/processing"
	"github.com/lgbarn/checkers-go/internal/render"
)

// PositionRequest asks about one position. An empty Position means the
// starting position; Square optionally selects one piece.
type PositionRequest struct {
	Position    string `json:"position"`
	Square      string `json:"square,omitempty"`
	SquareNames bool   `json:"squareNames,omitempty"`
}

// ReplayRequest asks for the position after playing Moves from Position.
type ReplayRequest struct {
	Position    string   `json:"position"`
	Moves       []string `json:"moves"`
	SquareNames bool     `json:"squareNames,omitempty"`
}

// PositionResponse is the analysed position plus the request ID.
type PositionResponse struct {
	RequestID string `json:"requestId"`
	*output.JSONPosition
}

// Health reports that the server is up.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"requestId": requestID(c),
	})
}

// Moves lists the legal moves of a position.
func Moves(c *fiber.Ctx) error {
	var req PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body: "+err.Error())
	}

	a, err := processing.AnalyzePosition(req.Position, req.Square)
	if err != nil {
		return err
	}
	return c.JSON(toResponse(requestID(c), a, req.SquareNames))
}

// Replay plays a move list and returns the resulting position.
func Replay(c *fiber.Ctx) error {
	var req ReplayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body: "+err.Error())
	}

	a, result := processing.ReplayMoves(req.Position, req.Moves)
	if !result.Valid {
		return result.Err
	}
	return c.JSON(toResponse(requestID(c), a, req.SquareNames))
}

// Render draws the position as text, marking legal destinations.
func Render(c *fiber.Ctx) error {
	var req PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body: "+err.Error())
	}

	a, err := processing.AnalyzePosition(req.Position, req.Square)
	if err != nil {
		return err
	}

	opts := render.Options{Targets: a.Targets()}
	if coords, err := checkers.LocationToCoordinates(a.Selected); err == nil {
		opts.SelectedColumn = coords.Column
	}

	var buf bytes.Buffer
	if err := render.Board(&buf, a.Pieces(), opts); err != nil {
		return err
	}
	c.Type("txt", "utf-8")
	return c.Send(buf.Bytes())
}

func toResponse(id string, a *processing.Analysis, squareNames bool) PositionResponse {
	jp := output.AnalysisToJSON(a, &config.OutputConfig{SquareNames: squareNames})
	return PositionResponse{RequestID: id, JSONPosition: jp}
}
