package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	topPlacements      = 5
	firstExtendedPlace = topPlacements + 1

	fourXMultiplier = 4
)

var (
	standardFields = [topPlacements]string{
		"standard_1st_place", "standard_2nd_place", "standard_3rd_place", "standard_4th_place", "standard_5th_place",
	}
	fourXFields = [topPlacements]string{
		"four_x_1st_place", "four_x_2nd_place", "four_x_3rd_place", "four_x_4th_place", "four_x_5th_place",
	}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(pointsConfigStructLevel, PointsConfig{})
	return v
}

// pointsConfigStructLevel checks rules spanning several fields: each
// table must not increase from 1st to 5th, and an enabled extended range
// must start after 5th place.
func pointsConfigStructLevel(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(PointsConfig)

	reportIncreases(sl, cfg.StandardPoints(), standardFields)
	reportIncreases(sl, cfg.FourXPoints(), fourXFields)

	if cfg.ExtendedEnabled && cfg.ExtendedMaxPlace < firstExtendedPlace {
		sl.ReportError(cfg.ExtendedMaxPlace, "four_x_extended_max_place", "ExtendedMaxPlace", "min", fmt.Sprint(firstExtendedPlace))
	}
}

func reportIncreases(sl validator.StructLevel, points [topPlacements]int, fields [topPlacements]string) {
	for i := 1; i < len(points); i++ {
		if points[i] > points[i-1] {
			sl.ReportError(points[i], fields[i], fields[i], "nonincreasing", fields[i-1])
		}
	}
}

// ValidatePointsConfig reports every rule cfg breaks, wrapped in ErrInvalidPointsConfig.
func ValidatePointsConfig(cfg PointsConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPointsConfig, describeValidation(err))
	}
	return nil
}

func validateUpdate(u PointsConfigUpdate) error {
	if err := validate.Struct(u); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPointsConfig, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "nonincreasing":
			msgs = append(msgs, fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// DefaultPointsConfig is the table a season gets before anyone edits it.
func DefaultPointsConfig() PointsConfig {
	return PointsConfig{
		Standard1st:      5,
		Standard2nd:      4,
		Standard3rd:      3,
		Standard4th:      2,
		Standard5th:      1,
		FourX1st:         30,
		FourX2nd:         27,
		FourX3rd:         24,
		FourX4th:         21,
		FourX5th:         18,
		ExtendedEnabled:  false,
		ExtendedPoints:   15,
		ExtendedMaxPlace: 50,
	}
}

// CalculatePoints returns the points a placement earns at an event with
// the given multiplier. Multiplier 0 marks a non-competitive event and
// 4 selects the fixed 4X table; 1 to 3 scale the standard base points.
// Only the top five earn standard points.
func CalculatePoints(placement, multiplier int, cfg PointsConfig) int {
	if multiplier == 0 {
		return 0
	}

	if multiplier == fourXMultiplier {
		if placement >= 1 && placement <= topPlacements {
			return cfg.FourXPoints()[placement-1]
		}
		if cfg.ExtendedEnabled && placement >= firstExtendedPlace && placement <= cfg.ExtendedMaxPlace {
			return cfg.ExtendedPoints
		}
		return 0
	}

	if placement < 1 || placement > topPlacements {
		return 0
	}
	return cfg.StandardPoints()[placement-1] * multiplier
}

// ComputePreview lists the points of placements 1 to 5 in every tier.
// With extended placements enabled it adds a row for 6th place and, when
// the range goes further, one more row for the last paid placement. The
// placements in between share the same 4X points and get no rows.
// cfg is not validated.
func ComputePreview(cfg PointsConfig) []PreviewRow {
	preview := make([]PreviewRow, 0, topPlacements+2)

	for p := 1; p <= topPlacements; p++ {
		preview = append(preview, PreviewRow{
			Placement:  p,
			Standard1X: CalculatePoints(p, 1, cfg),
			Standard2X: CalculatePoints(p, 2, cfg),
			Standard3X: CalculatePoints(p, 3, cfg),
			FourX:      CalculatePoints(p, fourXMultiplier, cfg),
		})
	}

	if cfg.ExtendedEnabled {
		preview = append(preview, PreviewRow{
			Placement: firstExtendedPlace,
			FourX:     cfg.ExtendedPoints,
		})

		if cfg.ExtendedMaxPlace > firstExtendedPlace {
			preview = append(preview, PreviewRow{
				Placement: cfg.ExtendedMaxPlace,
				FourX:     cfg.ExtendedPoints,
			})
		}
	}

	return preview
}
