package game

// Any game that aims to be playable by the searcher implements State and
// supplies a ResponseGenerator and an Evaluator. The searcher never depends on
// a concrete game.

// PlayerID identifies one of the two players.
type PlayerID int

const (
	First PlayerID = iota
	Second
)

// Other returns the opponent of p.
func (p PlayerID) Other() PlayerID {
	if p == First {
		return Second
	}
	return First
}

func (p PlayerID) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "unknown"
	}
}

// StateHash is a 64-bit structural fingerprint of a state. Two states with the
// same observable content have the same StateHash, whatever moves led to them.
type StateHash uint64

// State is a position in a two-player, zero-sum, perfect-information game.
// Implementations are copied by the response generator; the searcher only
// writes the response slot.
type State interface {
	Fingerprint() StateHash
	WhoseTurn() PlayerID
	// Response returns the successor chosen by the searcher, or nil.
	Response() State
	SetResponse(response State)
}

// ResponseGenerator returns every legal successor of state, in a fixed order.
// depth is the number of plies between state and the root of the search.
// A finished state has no successors.
type ResponseGenerator func(state State, depth int) []State

// Evaluator scores a state: positive favors the first player, negative the
// second. FirstPlayerWins and SecondPlayerWins bound every score the evaluator
// can produce and are returned exactly for won states.
type Evaluator interface {
	Evaluate(state State) float32
	FirstPlayerWins() float32
	SecondPlayerWins() float32
}

// ResponseSlot holds the response chosen for a state. Embed it to implement
// the Response and SetResponse halves of State.
type ResponseSlot struct {
	response State
}

func (s *ResponseSlot) Response() State {
	return s.response
}

func (s *ResponseSlot) SetResponse(response State) {
	s.response = response
}

// ClearResponse empties the slot. Copies of a state must not share a response.
func (s *ResponseSlot) ClearResponse() {
	s.response = nil
}
