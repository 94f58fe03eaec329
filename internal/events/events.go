package events

// Outbound wire messages. Every frame a client receives is an Event with a
// type discriminator and a type-specific payload.

type Type string

const (
	TypeHello         Type = "hello"
	TypeStatus        Type = "status"
	TypeGameStart     Type = "game_start"
	TypeTurnStart     Type = "turn_start"
	TypePlayerAction  Type = "player_action"
	TypeTimeOut       Type = "time_out"
	TypeChat          Type = "chat"
	TypeError         Type = "error"
	TypeInterrogation Type = "interrogation"
)

type Event struct {
	Type    Type `json:"type"`
	Payload any  `json:"payload,omitempty"`
}

// HelloPayload is the initial state snapshot sent to a connection right
// after it joins. Slot 0 marks an observer.
type HelloPayload struct {
	RoomID      string `json:"room_id"`
	Slot        int    `json:"player_id"`
	Connections int    `json:"players"`
	Roster      []int  `json:"roster"`
	Case        any    `json:"case"`
	CurrentTurn int    `json:"current_turn"`
	Active      bool   `json:"game_active"`
}

func Hello(p HelloPayload) Event {
	return Event{Type: TypeHello, Payload: p}
}

// StatusPayload announces a roster change.
type StatusPayload struct {
	Change string `json:"change"` // "join" or "leave"
	Slot   int    `json:"player"`
	Roster []int  `json:"roster"`
}

func Status(change string, slot int, roster []int) Event {
	return Event{Type: TypeStatus, Payload: StatusPayload{Change: change, Slot: slot, Roster: roster}}
}

func GameStart(casePayload any) Event {
	return Event{Type: TypeGameStart, Payload: casePayload}
}

type TurnPayload struct {
	Slot      int `json:"player"`
	TimeLimit int `json:"time_limit,omitempty"` // seconds
}

func TurnStart(slot, limitSecs int) Event {
	return Event{Type: TypeTurnStart, Payload: TurnPayload{Slot: slot, TimeLimit: limitSecs}}
}

func PlayerAction(slot int) Event {
	return Event{Type: TypePlayerAction, Payload: TurnPayload{Slot: slot}}
}

func TimeOut(slot int) Event {
	return Event{Type: TypeTimeOut, Payload: TurnPayload{Slot: slot}}
}

type ChatPayload struct {
	Slot int    `json:"player_id"`
	Text string `json:"text"`
}

func Chat(slot int, text string) Event {
	return Event{Type: TypeChat, Payload: ChatPayload{Slot: slot, Text: text}}
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func Error(message string) Event {
	return Event{Type: TypeError, Payload: ErrorPayload{Message: message}}
}

func Interrogation(entry any) Event {
	return Event{Type: TypeInterrogation, Payload: entry}
}
