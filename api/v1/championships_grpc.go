package mecav1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/newmeca/meca-server/pkg/grpc/codec"
)

const ServiceName = "meca.v1.Championships"

const (
	Championships_GetResultsForYear_FullMethodName        = "/meca.v1.Championships/GetResultsForYear"
	Championships_GetStateChampionsForYear_FullMethodName = "/meca.v1.Championships/GetStateChampionsForYear"
	Championships_ListArchives_FullMethodName             = "/meca.v1.Championships/ListArchives"
	Championships_GetArchive_FullMethodName               = "/meca.v1.Championships/GetArchive"
	Championships_GetArchiveByID_FullMethodName           = "/meca.v1.Championships/GetArchiveByID"
	Championships_CreateArchive_FullMethodName            = "/meca.v1.Championships/CreateArchive"
	Championships_CreateArchiveForSeason_FullMethodName   = "/meca.v1.Championships/CreateArchiveForSeason"
	Championships_UpdateArchive_FullMethodName            = "/meca.v1.Championships/UpdateArchive"
	Championships_SetArchivePublished_FullMethodName      = "/meca.v1.Championships/SetArchivePublished"
	Championships_DeleteArchive_FullMethodName            = "/meca.v1.Championships/DeleteArchive"
	Championships_GetPointsConfig_FullMethodName          = "/meca.v1.Championships/GetPointsConfig"
	Championships_GetCurrentPointsConfig_FullMethodName   = "/meca.v1.Championships/GetCurrentPointsConfig"
	Championships_ListPointsConfigs_FullMethodName        = "/meca.v1.Championships/ListPointsConfigs"
	Championships_GetPointsPreview_FullMethodName         = "/meca.v1.Championships/GetPointsPreview"
	Championships_PreviewPoints_FullMethodName            = "/meca.v1.Championships/PreviewPoints"
	Championships_UpdatePointsConfig_FullMethodName       = "/meca.v1.Championships/UpdatePointsConfig"
	Championships_CalculatePoints_FullMethodName          = "/meca.v1.Championships/CalculatePoints"
)

// ChampionshipsServer is the server API for the Championships service.
// Implementations must embed UnimplementedChampionshipsServer.
type ChampionshipsServer interface {
	GetResultsForYear(context.Context, *YearRequest) (*FormatResults, error)
	GetStateChampionsForYear(context.Context, *YearRequest) (*StateChampions, error)
	ListArchives(context.Context, *ListArchivesRequest) (*ArchivesResponse, error)
	GetArchive(context.Context, *ArchiveRequest) (*Archive, error)
	GetArchiveByID(context.Context, *ArchiveIDRequest) (*Archive, error)
	CreateArchive(context.Context, *CreateArchiveRequest) (*Archive, error)
	CreateArchiveForSeason(context.Context, *CreateArchiveForSeasonRequest) (*Archive, error)
	UpdateArchive(context.Context, *UpdateArchiveRequest) (*Archive, error)
	SetArchivePublished(context.Context, *SetArchivePublishedRequest) (*Archive, error)
	DeleteArchive(context.Context, *ArchiveIDRequest) (*Archive, error)
	GetPointsConfig(context.Context, *SeasonRequest) (*PointsConfiguration, error)
	GetCurrentPointsConfig(context.Context, *Empty) (*PointsConfiguration, error)
	ListPointsConfigs(context.Context, *Empty) (*PointsConfigsResponse, error)
	GetPointsPreview(context.Context, *SeasonRequest) (*PointsPreview, error)
	PreviewPoints(context.Context, *PointsConfig) (*PreviewResponse, error)
	UpdatePointsConfig(context.Context, *UpdatePointsConfigRequest) (*PointsConfiguration, error)
	CalculatePoints(context.Context, *CalculatePointsRequest) (*CalculatePointsResponse, error)
	mustEmbedUnimplementedChampionshipsServer()
}

type UnimplementedChampionshipsServer struct{}

func (UnimplementedChampionshipsServer) GetResultsForYear(context.Context, *YearRequest) (*FormatResults, error) {
	return nil, status.Error(codes.Unimplemented, "method GetResultsForYear not implemented")
}

func (UnimplementedChampionshipsServer) GetStateChampionsForYear(context.Context, *YearRequest) (*StateChampions, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStateChampionsForYear not implemented")
}

func (UnimplementedChampionshipsServer) ListArchives(context.Context, *ListArchivesRequest) (*ArchivesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListArchives not implemented")
}

func (UnimplementedChampionshipsServer) GetArchive(context.Context, *ArchiveRequest) (*Archive, error) {
	return nil, status.Error(codes.Unimplemented, "method GetArchive not implemented")
}

func (UnimplementedChampionshipsServer) GetArchiveByID(context.Context, *ArchiveIDRequest) (*Archive, error) {
	return nil, status.Error(codes.Unimplemented, "method GetArchiveByID not implemented")
}

func (UnimplementedChampionshipsServer) CreateArchive(context.Context, *CreateArchiveRequest) (*Archive, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateArchive not implemented")
}

func (UnimplementedChampionshipsServer) CreateArchiveForSeason(context.Context, *CreateArchiveForSeasonRequest) (*Archive, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateArchiveForSeason not implemented")
}

func (UnimplementedChampionshipsServer) UpdateArchive(context.Context, *UpdateArchiveRequest) (*Archive, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateArchive not implemented")
}

func (UnimplementedChampionshipsServer) SetArchivePublished(context.Context, *SetArchivePublishedRequest) (*Archive, error) {
	return nil, status.Error(codes.Unimplemented, "method SetArchivePublished not implemented")
}

func (UnimplementedChampionshipsServer) DeleteArchive(context.Context, *ArchiveIDRequest) (*Archive, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteArchive not implemented")
}

func (UnimplementedChampionshipsServer) GetPointsConfig(context.Context, *SeasonRequest) (*PointsConfiguration, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPointsConfig not implemented")
}

func (UnimplementedChampionshipsServer) GetCurrentPointsConfig(context.Context, *Empty) (*PointsConfiguration, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentPointsConfig not implemented")
}

func (UnimplementedChampionshipsServer) ListPointsConfigs(context.Context, *Empty) (*PointsConfigsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPointsConfigs not implemented")
}

func (UnimplementedChampionshipsServer) GetPointsPreview(context.Context, *SeasonRequest) (*PointsPreview, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPointsPreview not implemented")
}

func (UnimplementedChampionshipsServer) PreviewPoints(context.Context, *PointsConfig) (*PreviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PreviewPoints not implemented")
}

func (UnimplementedChampionshipsServer) UpdatePointsConfig(context.Context, *UpdatePointsConfigRequest) (*PointsConfiguration, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePointsConfig not implemented")
}

func (UnimplementedChampionshipsServer) CalculatePoints(context.Context, *CalculatePointsRequest) (*CalculatePointsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CalculatePoints not implemented")
}

func (UnimplementedChampionshipsServer) mustEmbedUnimplementedChampionshipsServer() {}

func RegisterChampionshipsServer(s grpc.ServiceRegistrar, srv ChampionshipsServer) {
	s.RegisterService(&Championships_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler.
func unaryHandler[Req, Resp any](fullMethod string, call func(ChampionshipsServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ChampionshipsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ChampionshipsServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var Championships_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ChampionshipsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetResultsForYear",
			Handler:    unaryHandler(Championships_GetResultsForYear_FullMethodName, ChampionshipsServer.GetResultsForYear),
		},
		{
			MethodName: "GetStateChampionsForYear",
			Handler:    unaryHandler(Championships_GetStateChampionsForYear_FullMethodName, ChampionshipsServer.GetStateChampionsForYear),
		},
		{
			MethodName: "ListArchives",
			Handler:    unaryHandler(Championships_ListArchives_FullMethodName, ChampionshipsServer.ListArchives),
		},
		{
			MethodName: "GetArchive",
			Handler:    unaryHandler(Championships_GetArchive_FullMethodName, ChampionshipsServer.GetArchive),
		},
		{
			MethodName: "GetArchiveByID",
			Handler:    unaryHandler(Championships_GetArchiveByID_FullMethodName, ChampionshipsServer.GetArchiveByID),
		},
		{
			MethodName: "CreateArchive",
			Handler:    unaryHandler(Championships_CreateArchive_FullMethodName, ChampionshipsServer.CreateArchive),
		},
		{
			MethodName: "CreateArchiveForSeason",
			Handler:    unaryHandler(Championships_CreateArchiveForSeason_FullMethodName, ChampionshipsServer.CreateArchiveForSeason),
		},
		{
			MethodName: "UpdateArchive",
			Handler:    unaryHandler(Championships_UpdateArchive_FullMethodName, ChampionshipsServer.UpdateArchive),
		},
		{
			MethodName: "SetArchivePublished",
			Handler:    unaryHandler(Championships_SetArchivePublished_FullMethodName, ChampionshipsServer.SetArchivePublished),
		},
		{
			MethodName: "DeleteArchive",
			Handler:    unaryHandler(Championships_DeleteArchive_FullMethodName, ChampionshipsServer.DeleteArchive),
		},
		{
			MethodName: "GetPointsConfig",
			Handler:    unaryHandler(Championships_GetPointsConfig_FullMethodName, ChampionshipsServer.GetPointsConfig),
		},
		{
			MethodName: "GetCurrentPointsConfig",
			Handler:    unaryHandler(Championships_GetCurrentPointsConfig_FullMethodName, ChampionshipsServer.GetCurrentPointsConfig),
		},
		{
			MethodName: "ListPointsConfigs",
			Handler:    unaryHandler(Championships_ListPointsConfigs_FullMethodName, ChampionshipsServer.ListPointsConfigs),
		},
		{
			MethodName: "GetPointsPreview",
			Handler:    unaryHandler(Championships_GetPointsPreview_FullMethodName, ChampionshipsServer.GetPointsPreview),
		},
		{
			MethodName: "PreviewPoints",
			Handler:    unaryHandler(Championships_PreviewPoints_FullMethodName, ChampionshipsServer.PreviewPoints),
		},
		{
			MethodName: "UpdatePointsConfig",
			Handler:    unaryHandler(Championships_UpdatePointsConfig_FullMethodName, ChampionshipsServer.UpdatePointsConfig),
		},
		{
			MethodName: "CalculatePoints",
			Handler:    unaryHandler(Championships_CalculatePoints_FullMethodName, ChampionshipsServer.CalculatePoints),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "meca/v1/championships",
}

// ChampionshipsClient is the client API for the Championships service.
type ChampionshipsClient interface {
	GetResultsForYear(ctx context.Context, in *YearRequest, opts ...grpc.CallOption) (*FormatResults, error)
	GetStateChampionsForYear(ctx context.Context, in *YearRequest, opts ...grpc.CallOption) (*StateChampions, error)
	ListArchives(ctx context.Context, in *ListArchivesRequest, opts ...grpc.CallOption) (*ArchivesResponse, error)
	GetArchive(ctx context.Context, in *ArchiveRequest, opts ...grpc.CallOption) (*Archive, error)
	GetArchiveByID(ctx context.Context, in *ArchiveIDRequest, opts ...grpc.CallOption) (*Archive, error)
	CreateArchive(ctx context.Context, in *CreateArchiveRequest, opts ...grpc.CallOption) (*Archive, error)
	CreateArchiveForSeason(ctx context.Context, in *CreateArchiveForSeasonRequest, opts ...grpc.CallOption) (*Archive, error)
	UpdateArchive(ctx context.Context, in *UpdateArchiveRequest, opts ...grpc.CallOption) (*Archive, error)
	SetArchivePublished(ctx context.Context, in *SetArchivePublishedRequest, opts ...grpc.CallOption) (*Archive, error)
	DeleteArchive(ctx context.Context, in *ArchiveIDRequest, opts ...grpc.CallOption) (*Archive, error)
	GetPointsConfig(ctx context.Context, in *SeasonRequest, opts ...grpc.CallOption) (*PointsConfiguration, error)
	GetCurrentPointsConfig(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PointsConfiguration, error)
	ListPointsConfigs(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PointsConfigsResponse, error)
	GetPointsPreview(ctx context.Context, in *SeasonRequest, opts ...grpc.CallOption) (*PointsPreview, error)
	PreviewPoints(ctx context.Context, in *PointsConfig, opts ...grpc.CallOption) (*PreviewResponse, error)
	UpdatePointsConfig(ctx context.Context, in *UpdatePointsConfigRequest, opts ...grpc.CallOption) (*PointsConfiguration, error)
	CalculatePoints(ctx context.Context, in *CalculatePointsRequest, opts ...grpc.CallOption) (*CalculatePointsResponse, error)
}

type championshipsClient struct {
	cc grpc.ClientConnInterface
}

// NewChampionshipsClient returns a client whose calls use the JSON codec.
func NewChampionshipsClient(cc grpc.ClientConnInterface) ChampionshipsClient {
	return &championshipsClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *championshipsClient) GetResultsForYear(ctx context.Context, in *YearRequest, opts ...grpc.CallOption) (*FormatResults, error) {
	return invoke[FormatResults](ctx, c.cc, Championships_GetResultsForYear_FullMethodName, in, opts)
}

func (c *championshipsClient) GetStateChampionsForYear(ctx context.Context, in *YearRequest, opts ...grpc.CallOption) (*StateChampions, error) {
	return invoke[StateChampions](ctx, c.cc, Championships_GetStateChampionsForYear_FullMethodName, in, opts)
}

func (c *championshipsClient) ListArchives(ctx context.Context, in *ListArchivesRequest, opts ...grpc.CallOption) (*ArchivesResponse, error) {
	return invoke[ArchivesResponse](ctx, c.cc, Championships_ListArchives_FullMethodName, in, opts)
}

func (c *championshipsClient) GetArchive(ctx context.Context, in *ArchiveRequest, opts ...grpc.CallOption) (*Archive, error) {
	return invoke[Archive](ctx, c.cc, Championships_GetArchive_FullMethodName, in, opts)
}

func (c *championshipsClient) GetArchiveByID(ctx context.Context, in *ArchiveIDRequest, opts ...grpc.CallOption) (*Archive, error) {
	return invoke[Archive](ctx, c.cc, Championships_GetArchiveByID_FullMethodName, in, opts)
}

func (c *championshipsClient) CreateArchive(ctx context.Context, in *CreateArchiveRequest, opts ...grpc.CallOption) (*Archive, error) {
	return invoke[Archive](ctx, c.cc, Championships_CreateArchive_FullMethodName, in, opts)
}

func (c *championshipsClient) CreateArchiveForSeason(ctx context.Context, in *CreateArchiveForSeasonRequest, opts ...grpc.CallOption) (*Archive, error) {
	return invoke[Archive](ctx, c.cc, Championships_CreateArchiveForSeason_FullMethodName, in, opts)
}

func (c *championshipsClient) UpdateArchive(ctx context.Context, in *UpdateArchiveRequest, opts ...grpc.CallOption) (*Archive, error) {
	return invoke[Archive](ctx, c.cc, Championships_UpdateArchive_FullMethodName, in, opts)
}

func (c *championshipsClient) SetArchivePublished(ctx context.Context, in *SetArchivePublishedRequest, opts ...grpc.CallOption) (*Archive, error) {
	return invoke[Archive](ctx, c.cc, Championships_SetArchivePublished_FullMethodName, in, opts)
}

func (c *championshipsClient) DeleteArchive(ctx context.Context, in *ArchiveIDRequest, opts ...grpc.CallOption) (*Archive, error) {
	return invoke[Archive](ctx, c.cc, Championships_DeleteArchive_FullMethodName, in, opts)
}

func (c *championshipsClient) GetPointsConfig(ctx context.Context, in *SeasonRequest, opts ...grpc.CallOption) (*PointsConfiguration, error) {
	return invoke[PointsConfiguration](ctx, c.cc, Championships_GetPointsConfig_FullMethodName, in, opts)
}

func (c *championshipsClient) GetCurrentPointsConfig(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PointsConfiguration, error) {
	return invoke[PointsConfiguration](ctx, c.cc, Championships_GetCurrentPointsConfig_FullMethodName, in, opts)
}

func (c *championshipsClient) ListPointsConfigs(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PointsConfigsResponse, error) {
	return invoke[PointsConfigsResponse](ctx, c.cc, Championships_ListPointsConfigs_FullMethodName, in, opts)
}

func (c *championshipsClient) GetPointsPreview(ctx context.Context, in *SeasonRequest, opts ...grpc.CallOption) (*PointsPreview, error) {
	return invoke[PointsPreview](ctx, c.cc, Championships_GetPointsPreview_FullMethodName, in, opts)
}

func (c *championshipsClient) PreviewPoints(ctx context.Context, in *PointsConfig, opts ...grpc.CallOption) (*PreviewResponse, error) {
	return invoke[PreviewResponse](ctx, c.cc, Championships_PreviewPoints_FullMethodName, in, opts)
}

func (c *championshipsClient) UpdatePointsConfig(ctx context.Context, in *UpdatePointsConfigRequest, opts ...grpc.CallOption) (*PointsConfiguration, error) {
	return invoke[PointsConfiguration](ctx, c.cc, Championships_UpdatePointsConfig_FullMethodName, in, opts)
}

func (c *championshipsClient) CalculatePoints(ctx context.Context, in *CalculatePointsRequest, opts ...grpc.CallOption) (*CalculatePointsResponse, error) {
	return invoke[CalculatePointsResponse](ctx, c.cc, Championships_CalculatePoints_FullMethodName, in, opts)
}
