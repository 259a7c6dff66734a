package service

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ResultRecord is one placement in a world finals class.
type ResultRecord struct {
	Placement      int     `json:"placement"`
	CompetitorName string  `json:"competitorName"`
	TeamName       *string `json:"teamName"`
	State          *string `json:"state"`
	Score          float64 `json:"score"`
}

// ChampionRecord is a first place finish at a state finals event.
type ChampionRecord struct {
	ClassName      string  `json:"className"`
	CompetitorName string  `json:"competitorName"`
	TeamName       *string `json:"teamName"`
	Score          float64 `json:"score"`
}

// ClassResults maps class name to placements, best first.
type ClassResults = orderedmap.OrderedMap[string, []ResultRecord]

// FormatResults maps competition format to its classes.
type FormatResults = orderedmap.OrderedMap[string, *ClassResults]

// StateChampions maps venue state to the champions crowned there.
type StateChampions = orderedmap.OrderedMap[string, []ChampionRecord]

type Archive struct {
	ID                 string  `json:"id"`
	SeasonID           *string `json:"season_id"`
	Year               int     `json:"year"`
	Title              string  `json:"title"`
	WorldFinalsEventID *string `json:"world_finals_event_id"`
	Published          bool    `json:"published"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

// ArchiveInput describes a new archive.
type ArchiveInput struct {
	SeasonID           *string `json:"season_id,omitempty"`
	Year               int     `json:"year"`
	Title              string  `json:"title"`
	WorldFinalsEventID *string `json:"world_finals_event_id,omitempty"`
	Published          bool    `json:"published"`
}

// ArchiveUpdate carries a partial update; nil fields are left unchanged.
// The year of an archive never changes.
type ArchiveUpdate struct {
	SeasonID           *string `json:"season_id,omitempty"`
	Title              *string `json:"title,omitempty"`
	WorldFinalsEventID *string `json:"world_finals_event_id,omitempty"`
	Published          *bool   `json:"published,omitempty"`
}

// PointsConfig is the placement-to-points table of a season.
type PointsConfig struct {
	Standard1st int `json:"standard_1st_place" validate:"min=0"`
	Standard2nd int `json:"standard_2nd_place" validate:"min=0"`
	Standard3rd int `json:"standard_3rd_place" validate:"min=0"`
	Standard4th int `json:"standard_4th_place" validate:"min=0"`
	Standard5th int `json:"standard_5th_place" validate:"min=0"`

	FourX1st int `json:"four_x_1st_place" validate:"min=0"`
	FourX2nd int `json:"four_x_2nd_place" validate:"min=0"`
	FourX3rd int `json:"four_x_3rd_place" validate:"min=0"`
	FourX4th int `json:"four_x_4th_place" validate:"min=0"`
	FourX5th int `json:"four_x_5th_place" validate:"min=0"`

	ExtendedEnabled  bool `json:"four_x_extended_enabled"`
	ExtendedPoints   int  `json:"four_x_extended_points" validate:"min=0"`
	ExtendedMaxPlace int  `json:"four_x_extended_max_place" validate:"min=0,max=100"`
}

func (c PointsConfig) StandardPoints() [5]int {
	return [5]int{c.Standard1st, c.Standard2nd, c.Standard3rd, c.Standard4th, c.Standard5th}
}

func (c PointsConfig) FourXPoints() [5]int {
	return [5]int{c.FourX1st, c.FourX2nd, c.FourX3rd, c.FourX4th, c.FourX5th}
}

// PointsConfiguration is a stored PointsConfig with its season and metadata.
type PointsConfiguration struct {
	ID       string `json:"id"`
	SeasonID string `json:"season_id"`
	PointsConfig
	IsActive    bool    `json:"is_active"`
	Description *string `json:"description"`
	UpdatedBy   *string `json:"updated_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// PointsConfigUpdate carries a partial update; nil fields are left unchanged.
type PointsConfigUpdate struct {
	Standard1st *int `json:"standard_1st_place,omitempty" validate:"omitempty,min=0"`
	Standard2nd *int `json:"standard_2nd_place,omitempty" validate:"omitempty,min=0"`
	Standard3rd *int `json:"standard_3rd_place,omitempty" validate:"omitempty,min=0"`
	Standard4th *int `json:"standard_4th_place,omitempty" validate:"omitempty,min=0"`
	Standard5th *int `json:"standard_5th_place,omitempty" validate:"omitempty,min=0"`

	FourX1st *int `json:"four_x_1st_place,omitempty" validate:"omitempty,min=0"`
	FourX2nd *int `json:"four_x_2nd_place,omitempty" validate:"omitempty,min=0"`
	FourX3rd *int `json:"four_x_3rd_place,omitempty" validate:"omitempty,min=0"`
	FourX4th *int `json:"four_x_4th_place,omitempty" validate:"omitempty,min=0"`
	FourX5th *int `json:"four_x_5th_place,omitempty" validate:"omitempty,min=0"`

	ExtendedEnabled  *bool `json:"four_x_extended_enabled,omitempty"`
	ExtendedPoints   *int  `json:"four_x_extended_points,omitempty" validate:"omitempty,min=0"`
	ExtendedMaxPlace *int  `json:"four_x_extended_max_place,omitempty" validate:"omitempty,min=6,max=100"`

	IsActive    *bool   `json:"is_active,omitempty"`
	Description *string `json:"description,omitempty"`
}

// PreviewRow lists the points one placement earns in each event tier.
type PreviewRow struct {
	Placement  int `json:"placement"`
	Standard1X int `json:"standard_1x"`
	Standard2X int `json:"standard_2x"`
	Standard3X int `json:"standard_3x"`
	FourX      int `json:"four_x"`
}

type PointsPreview struct {
	SeasonID string              `json:"season_id"`
	Config   PointsConfiguration `json:"config"`
	Preview  []PreviewRow        `json:"preview"`
}
