package httpapi

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/checkers-go/internal/processing"
)

// MessageType names the kind of a stream message.
type MessageType string

const (
	MessageTypeMoves  MessageType = "moves"
	MessageTypeReplay MessageType = "replay"
	MessageTypeResult MessageType = "result"
	MessageTypeError  MessageType = "error"
)

// Message is one frame on the /ws/moves stream. Requests carry a
// PositionRequest or ReplayRequest payload; the reply echoes ID.
type Message struct {
	Type    MessageType     `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WebSocketUpgrade rejects plain HTTP requests to the stream endpoints.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

// Stream answers each text frame with a result or error frame until the
// client disconnects.
func Stream(c *websocket.Conn) {
	connID, _ := c.Locals(requestIDKey).(string)

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := c.WriteJSON(HandleMessage(connID, data)); err != nil {
			log.Printf("stream %s: write error: %v", connID, err)
			break
		}
	}
}

// HandleMessage answers one stream request.
func HandleMessage(connID string, data []byte) Message {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorMessage(connID, "", fiber.NewError(fiber.StatusBadRequest, "malformed message: "+err.Error()))
	}

	var (
		a           *processing.Analysis
		squareNames bool
		err         error
	)
	switch msg.Type {
	case MessageTypeMoves:
		var req PositionRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorMessage(connID, msg.ID, fiber.NewError(fiber.StatusBadRequest, "malformed payload: "+err.Error()))
		}
		squareNames = req.SquareNames
		a, err = processing.AnalyzePosition(req.Position, req.Square)
	case MessageTypeReplay:
		var req ReplayRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errorMessage(connID, msg.ID, fiber.NewError(fiber.StatusBadRequest, "malformed payload: "+err.Error()))
		}
		squareNames = req.SquareNames
		var result *processing.ValidationResult
		a, result = processing.ReplayMoves(req.Position, req.Moves)
		if !result.Valid {
			err = result.Err
		}
	default:
		return errorMessage(connID, msg.ID, fiber.NewError(fiber.StatusBadRequest, "unknown message type "+string(msg.Type)))
	}
	if err != nil {
		return errorMessage(connID, msg.ID, err)
	}

	payload, err := json.Marshal(toResponse(connID, a, squareNames))
	if err != nil {
		return errorMessage(connID, msg.ID, err)
	}
	return Message{Type: MessageTypeResult, ID: msg.ID, Payload: payload}
}

func errorMessage(connID, id string, err error) Message {
	payload, _ := json.Marshal(newErrorResponse(connID, err))
	return Message{Type: MessageTypeError, ID: id, Payload: payload}
}
