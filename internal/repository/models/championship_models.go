package models

import "database/sql"

// Event types stored in events.event_type.
const (
	EventTypeStandard    = "standard"
	EventTypeStateFinals = "state_finals"
	EventTypeWorldFinals = "world_finals"
	EventTypeJudgesPoint = "judges_point"
)

type Season struct {
	ID        string
	Year      int
	Name      string
	IsCurrent bool
}

type Event struct {
	ID         string
	SeasonID   string
	Name       string
	EventType  string
	VenueState sql.NullString
	EventDate  sql.NullString
}

type Archive struct {
	ID                 string
	SeasonID           sql.NullString
	Year               int
	Title              string
	WorldFinalsEventID sql.NullString
	Published          bool
	CreatedAt          string
	UpdatedAt          string
}

// ResultRow is one competition result joined with its competitor and class.
type ResultRow struct {
	Placement int
	FirstName sql.NullString
	LastName  sql.NullString
	TeamName  sql.NullString
	StateCode sql.NullString
	Score     float64
	Format    sql.NullString
	ClassName sql.NullString
}
