package model

// RosterSize is the fixed number of player slots per match.  Padel is
// played by at most four people; slots are created empty and are
// never added or removed, only populated.
const RosterSize = 4

// Match is one court reservation together with its roster.
//
// Fields:
//  ID          – opaque unique identity.
//  CourtID     – court being reserved (catalog reference).
//  Responsible – name of the person who booked the slot; slot 0 of
//                the roster is pre-filled with it.
//  Date        – calendar day in "2006-01-02" form.
//  StartTime   – start of the booking in "15:04" form.
//  Duration    – booked minutes; the schedule treats the interval as
//                half-open, so back-to-back bookings never collide.
//  Players     – fixed roster of RosterSize slots.
//  IsCompleted – terminal flag; completed matches are excluded from
//                active scheduling and billing views.
type Match struct {
	ID          string             `json:"id"`
	CourtID     int                `json:"court_id"`
	Responsible string             `json:"responsible"`
	Date        string             `json:"date"`
	StartTime   string             `json:"time"`
	Duration    int                `json:"duration"`
	Players     [RosterSize]Player `json:"players"`
	IsCompleted bool               `json:"is_completed"`
}

// PlayerByID locates a roster slot by player id.  The second return
// value is the slot index, -1 when the id is unknown.
func (m Match) PlayerByID(id string) (Player, int) {
	for i, p := range m.Players {
		if p.ID == id {
			return p, i
		}
	}
	return Player{}, -1
}

// NamedPlayers returns the occupied roster slots in order.
func (m Match) NamedPlayers() []Player {
	out := make([]Player, 0, RosterSize)
	for _, p := range m.Players {
		if p.Named() {
			out = append(out, p)
		}
	}
	return out
}
