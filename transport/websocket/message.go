package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const (
	actionGameState = "game:state"
	actionGameClick = "game:click"
	actionGameJump  = "game:jump"
	actionGameSort  = "game:sort"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Game  *tictactoe.View `json:"game,omitempty"`
	Error string          `json:"error,omitempty"`
	Cell  *int            `json:"cell,omitempty"`
	Move  *int            `json:"move,omitempty"`
}
