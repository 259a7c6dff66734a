package models

import "database/sql"

type PointsConfiguration struct {
	ID       string
	SeasonID string

	Standard1st int
	Standard2nd int
	Standard3rd int
	Standard4th int
	Standard5th int

	FourX1st int
	FourX2nd int
	FourX3rd int
	FourX4th int
	FourX5th int

	FourXExtendedEnabled  bool
	FourXExtendedPoints   int
	FourXExtendedMaxPlace int

	IsActive    bool
	Description sql.NullString
	UpdatedBy   sql.NullString
	CreatedAt   string
	UpdatedAt   string
}
