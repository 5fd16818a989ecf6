// Package readapi implements the MetricsService gRPC API over the raw
// event store.
package readapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/persister/go/metricspb"
	"github.com/OlegKovalenko00/webmetrics/persister/go/rawstore"
)

// Server implements metricspb.MetricsServiceServer. Every method is a
// filtered read of one raw table; TotalCount in each response counts the
// returned page, not the whole table.
type Server struct {
	metricspb.UnimplementedMetricsServiceServer
	store rawstore.Store
}

// New returns a new *Server reading from store.
func New(store rawstore.Store) *Server {
	return &Server{
		store: store,
	}
}

// Register registers the server with g.
func (s *Server) Register(g *grpc.Server) {
	metricspb.RegisterMetricsServiceServer(g, s)
}

// baseFilter converts the request fields every method shares.
func baseFilter(tr *metricspb.TimeRange, page, userID string, pag *metricspb.Pagination) rawstore.Filter {
	f := rawstore.Filter{
		Page:   page,
		UserID: userID,
		Limit:  pag.GetLimit(),
		Offset: pag.GetOffset(),
	}
	if tr != nil {
		f.TimeRange = &rawstore.TimeRange{
			Start: tr.StartTimestamp,
			End:   tr.EndTimestamp,
		}
	}
	return f
}

// GetPageViews implements metricspb.MetricsServiceServer.
func (s *Server) GetPageViews(ctx context.Context, req *metricspb.GetPageViewsRequest) (*metricspb.GetPageViewsResponse, error) {
	rows, err := s.store.GetPageViews(ctx, baseFilter(req.TimeRange, req.PageFilter, req.UserIdFilter, req.Pagination))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &metricspb.GetPageViewsResponse{
		Events:     rows,
		TotalCount: int32(len(rows)),
	}, nil
}

// GetClicks implements metricspb.MetricsServiceServer.
func (s *Server) GetClicks(ctx context.Context, req *metricspb.GetClicksRequest) (*metricspb.GetClicksResponse, error) {
	f := baseFilter(req.TimeRange, req.PageFilter, req.UserIdFilter, req.Pagination)
	f.ElementID = req.ElementIdFilter
	rows, err := s.store.GetClicks(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &metricspb.GetClicksResponse{
		Events:     rows,
		TotalCount: int32(len(rows)),
	}, nil
}

// GetPerformance implements metricspb.MetricsServiceServer.
func (s *Server) GetPerformance(ctx context.Context, req *metricspb.GetPerformanceRequest) (*metricspb.GetPerformanceResponse, error) {
	rows, err := s.store.GetPerformance(ctx, baseFilter(req.TimeRange, req.PageFilter, req.UserIdFilter, req.Pagination))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &metricspb.GetPerformanceResponse{
		Events:     rows,
		TotalCount: int32(len(rows)),
	}, nil
}

// GetErrors implements metricspb.MetricsServiceServer.
func (s *Server) GetErrors(ctx context.Context, req *metricspb.GetErrorsRequest) (*metricspb.GetErrorsResponse, error) {
	f := baseFilter(req.TimeRange, req.PageFilter, req.UserIdFilter, req.Pagination)
	f.ErrorType = req.ErrorTypeFilter
	f.MinSeverity = events.Severity(req.SeverityFilter)
	rows, err := s.store.GetErrors(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &metricspb.GetErrorsResponse{
		Events:     rows,
		TotalCount: int32(len(rows)),
	}, nil
}

// GetCustomEvents implements metricspb.MetricsServiceServer.
func (s *Server) GetCustomEvents(ctx context.Context, req *metricspb.GetCustomEventsRequest) (*metricspb.GetCustomEventsResponse, error) {
	f := baseFilter(req.TimeRange, req.PageFilter, req.UserIdFilter, req.Pagination)
	f.Name = req.NameFilter
	rows, err := s.store.GetCustomEvents(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &metricspb.GetCustomEventsResponse{
		Events:     rows,
		TotalCount: int32(len(rows)),
	}, nil
}

// Confirm Server implements the full service interface.
var _ metricspb.MetricsServiceServer = (*Server)(nil)
