// Package readapi implements the AggregationService gRPC API over the
// rollup store.
package readapi

import (
	"context"
	"time"

	"github.com/gogo/protobuf/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggregationpb"
	"github.com/OlegKovalenko00/webmetrics/aggregator/go/aggstore"
	"github.com/OlegKovalenko00/webmetrics/go/now"
	"github.com/OlegKovalenko00/webmetrics/go/wmlog"
)

// Server implements aggregationpb.AggregationServiceServer. Every method
// is a filtered read of one rollup table. CreatedAt on returned rows is
// stamped with the serve time.
type Server struct {
	aggregationpb.UnimplementedAggregationServiceServer
	store aggstore.Store
}

// New returns a new *Server reading from store.
func New(store aggstore.Store) *Server {
	return &Server{
		store: store,
	}
}

// Register registers the server with g.
func (s *Server) Register(g *grpc.Server) {
	aggregationpb.RegisterAggregationServiceServer(g, s)
}

// ts converts a time to its protobuf form. Times read from the database
// are always representable, so a conversion failure is logged and returned
// as an absent timestamp rather than failing the request.
func ts(t time.Time) *types.Timestamp {
	ret, err := types.TimestampProto(t)
	if err != nil {
		wmlog.Errorf("Unrepresentable timestamp %v: %s", t, err)
		return nil
	}
	return ret
}

// baseFilter converts the request fields every method shares.
func baseFilter(projectID, page string, tr *aggregationpb.TimeRange, pag *aggregationpb.Pagination) (aggstore.ReadFilter, error) {
	f := aggstore.ReadFilter{
		ProjectID: projectID,
		Page:      page,
		Limit:     pag.GetLimit(),
		Offset:    pag.GetOffset(),
	}
	if tr == nil {
		return f, nil
	}
	if tr.From != nil {
		t, err := types.TimestampFromProto(tr.From)
		if err != nil {
			return f, err
		}
		f.From = t.UTC()
	}
	if tr.To != nil {
		t, err := types.TimestampFromProto(tr.To)
		if err != nil {
			return f, err
		}
		f.To = t.UTC()
	}
	return f, nil
}

// GetWatermark implements aggregationpb.AggregationServiceServer.
func (s *Server) GetWatermark(ctx context.Context, req *aggregationpb.GetWatermarkRequest) (*aggregationpb.GetWatermarkResponse, error) {
	wm, err := s.store.GetWatermark(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &aggregationpb.GetWatermarkResponse{
		LastAggregatedAt: ts(wm),
	}, nil
}

// GetPageViewsAgg implements aggregationpb.AggregationServiceServer.
func (s *Server) GetPageViewsAgg(ctx context.Context, req *aggregationpb.GetPageViewsAggRequest) (*aggregationpb.GetPageViewsAggResponse, error) {
	if req.ProjectId == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	f, err := baseFilter(req.ProjectId, req.Page, req.TimeRange, req.Pagination)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid time_range: %s", err)
	}
	rows, err := s.store.ReadPageViews(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	createdAt := ts(now.Now(ctx))
	ret := make([]*aggregationpb.PageViewsAggRow, 0, len(rows))
	for _, r := range rows {
		ret = append(ret, &aggregationpb.PageViewsAggRow{
			TimeBucket:     ts(r.TimeBucket),
			ProjectId:      r.ProjectID,
			Page:           r.Page,
			ViewsCount:     r.ViewsCount,
			UniqueUsers:    r.UniqueUsers,
			UniqueSessions: r.UniqueSessions,
			CreatedAt:      createdAt,
		})
	}
	return &aggregationpb.GetPageViewsAggResponse{Rows: ret}, nil
}

// GetClicksAgg implements aggregationpb.AggregationServiceServer.
func (s *Server) GetClicksAgg(ctx context.Context, req *aggregationpb.GetClicksAggRequest) (*aggregationpb.GetClicksAggResponse, error) {
	if req.ProjectId == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	f, err := baseFilter(req.ProjectId, req.Page, req.TimeRange, req.Pagination)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid time_range: %s", err)
	}
	f.ElementID = req.ElementId
	rows, err := s.store.ReadClicks(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	createdAt := ts(now.Now(ctx))
	ret := make([]*aggregationpb.ClicksAggRow, 0, len(rows))
	for _, r := range rows {
		ret = append(ret, &aggregationpb.ClicksAggRow{
			TimeBucket:     ts(r.TimeBucket),
			ProjectId:      r.ProjectID,
			Page:           r.Page,
			ElementId:      r.ElementID,
			ClicksCount:    r.ClicksCount,
			UniqueUsers:    r.UniqueUsers,
			UniqueSessions: r.UniqueSessions,
			CreatedAt:      createdAt,
		})
	}
	return &aggregationpb.GetClicksAggResponse{Rows: ret}, nil
}

// GetPerformanceAgg implements aggregationpb.AggregationServiceServer.
func (s *Server) GetPerformanceAgg(ctx context.Context, req *aggregationpb.GetPerformanceAggRequest) (*aggregationpb.GetPerformanceAggResponse, error) {
	if req.ProjectId == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	f, err := baseFilter(req.ProjectId, req.Page, req.TimeRange, req.Pagination)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid time_range: %s", err)
	}
	rows, err := s.store.ReadPerformance(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	createdAt := ts(now.Now(ctx))
	ret := make([]*aggregationpb.PerformanceAggRow, 0, len(rows))
	for _, r := range rows {
		ret = append(ret, &aggregationpb.PerformanceAggRow{
			TimeBucket:     ts(r.TimeBucket),
			ProjectId:      r.ProjectID,
			Page:           r.Page,
			SamplesCount:   r.SamplesCount,
			AvgTtfbMs:      r.AvgTTFBMs,
			P95TtfbMs:      r.P95TTFBMs,
			AvgFcpMs:       r.AvgFCPMs,
			P95FcpMs:       r.P95FCPMs,
			AvgLcpMs:       r.AvgLCPMs,
			P95LcpMs:       r.P95LCPMs,
			AvgTotalLoadMs: r.AvgTotalLoadMs,
			P95TotalLoadMs: r.P95TotalLoadMs,
			CreatedAt:      createdAt,
		})
	}
	return &aggregationpb.GetPerformanceAggResponse{Rows: ret}, nil
}

// GetErrorsAgg implements aggregationpb.AggregationServiceServer.
func (s *Server) GetErrorsAgg(ctx context.Context, req *aggregationpb.GetErrorsAggRequest) (*aggregationpb.GetErrorsAggResponse, error) {
	if req.ProjectId == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	f, err := baseFilter(req.ProjectId, req.Page, req.TimeRange, req.Pagination)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid time_range: %s", err)
	}
	f.ErrorType = req.ErrorType
	rows, err := s.store.ReadErrors(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	createdAt := ts(now.Now(ctx))
	ret := make([]*aggregationpb.ErrorsAggRow, 0, len(rows))
	for _, r := range rows {
		ret = append(ret, &aggregationpb.ErrorsAggRow{
			TimeBucket:    ts(r.TimeBucket),
			ProjectId:     r.ProjectID,
			Page:          r.Page,
			ErrorType:     r.ErrorType,
			ErrorsCount:   r.ErrorsCount,
			WarningCount:  r.WarningCount,
			CriticalCount: r.CriticalCount,
			UniqueUsers:   r.UniqueUsers,
			CreatedAt:     createdAt,
		})
	}
	return &aggregationpb.GetErrorsAggResponse{Rows: ret}, nil
}

// GetCustomEventsAgg implements aggregationpb.AggregationServiceServer.
func (s *Server) GetCustomEventsAgg(ctx context.Context, req *aggregationpb.GetCustomEventsAggRequest) (*aggregationpb.GetCustomEventsAggResponse, error) {
	if req.ProjectId == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	if req.EventName == "" {
		return nil, status.Error(codes.InvalidArgument, "event_name is required")
	}
	f, err := baseFilter(req.ProjectId, req.Page, req.TimeRange, req.Pagination)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid time_range: %s", err)
	}
	f.EventName = req.EventName
	rows, err := s.store.ReadCustomEvents(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	createdAt := ts(now.Now(ctx))
	ret := make([]*aggregationpb.CustomEventsAggRow, 0, len(rows))
	for _, r := range rows {
		ret = append(ret, &aggregationpb.CustomEventsAggRow{
			TimeBucket:     ts(r.TimeBucket),
			ProjectId:      r.ProjectID,
			EventName:      r.EventName,
			Page:           r.Page,
			EventsCount:    r.EventsCount,
			UniqueUsers:    r.UniqueUsers,
			UniqueSessions: r.UniqueSessions,
			CreatedAt:      createdAt,
		})
	}
	return &aggregationpb.GetCustomEventsAggResponse{Rows: ret}, nil
}

// Confirm Server implements the full service interface.
var _ aggregationpb.AggregationServiceServer = (*Server)(nil)
