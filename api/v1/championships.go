// Package mecav1 defines the meca.v1.Championships gRPC service. Messages
// are plain structs encoded with the JSON codec from pkg/grpc/codec.
package mecav1

import (
	"github.com/newmeca/meca-server/internal/service"
)

type (
	FormatResults        = service.FormatResults
	StateChampions       = service.StateChampions
	Archive              = service.Archive
	ArchiveUpdate        = service.ArchiveUpdate
	CreateArchiveRequest = service.ArchiveInput
	PointsConfig         = service.PointsConfig
	PointsConfiguration  = service.PointsConfiguration
	PointsConfigUpdate   = service.PointsConfigUpdate
	PointsPreview        = service.PointsPreview
	PreviewRow           = service.PreviewRow
)

type Empty struct{}

type YearRequest struct {
	Year int `json:"year"`
}

func (r *YearRequest) GetYear() int {
	if r == nil {
		return 0
	}
	return r.Year
}

type ListArchivesRequest struct {
	IncludeUnpublished bool `json:"include_unpublished"`
}

type ArchiveRequest struct {
	Year               int  `json:"year"`
	IncludeUnpublished bool `json:"include_unpublished"`
}

type ArchiveIDRequest struct {
	ID string `json:"id"`
}

type CreateArchiveForSeasonRequest struct {
	SeasonID string `json:"season_id"`
	Year     int    `json:"year"`
}

type UpdateArchiveRequest struct {
	ID     string        `json:"id"`
	Update ArchiveUpdate `json:"update"`
}

type SetArchivePublishedRequest struct {
	ID        string `json:"id"`
	Published bool   `json:"published"`
}

type SeasonRequest struct {
	SeasonID string `json:"season_id"`
}

func (r *SeasonRequest) GetSeasonId() string {
	if r == nil {
		return ""
	}
	return r.SeasonID
}

type ArchivesResponse struct {
	Archives []Archive `json:"archives"`
}

type PointsConfigsResponse struct {
	Configs []PointsConfiguration `json:"configs"`
}

type PreviewResponse struct {
	Preview []PreviewRow `json:"preview"`
}

// UpdatePointsConfigRequest carries the season, the editor and the
// fields to change.
type UpdatePointsConfigRequest struct {
	SeasonID  string             `json:"season_id"`
	UpdatedBy string             `json:"updated_by,omitempty"`
	Update    PointsConfigUpdate `json:"update"`
}

type CalculatePointsRequest struct {
	SeasonID   string `json:"season_id"`
	Placement  int    `json:"placement"`
	Multiplier int    `json:"multiplier"`
}

type CalculatePointsResponse struct {
	Points int `json:"points"`
}
