package bridge

import "encoding/json"

// Request is a JSON-RPC style request sent over the bridge socket.
type Request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
	ID     int             `json:"id,omitempty"`
}

// Response is the reply to a Request.
type Response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	ID     int             `json:"id,omitempty"`
}

// Methods understood by the server.
const (
	MethodNew       = "new"
	MethodDrop      = "drop"
	MethodState     = "state"
	MethodStateJSON = "state_json"
	MethodTimer     = "timer"
)

// HandleParams addresses a component.
type HandleParams struct {
	Handle Handle `json:"handle"`
}

// HandleResult returns a newly issued handle.
type HandleResult struct {
	Handle Handle `json:"handle"`
}

// TimerParams asks the server's timer to perform an action.
type TimerParams struct {
	Action string `json:"action"` // start, split, skip, undo, pause, resume, reset
}

// TimerResult reports the timer after an action.
type TimerResult struct {
	Phase      string `json:"phase"`
	SplitIndex int    `json:"split_index"` // -1 when no split is active
}
