package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.ExploreService = &exploreService{}

type exploreService struct {
	sketchStorage   service.SketchStorage
	timelineStorage service.TimelineStorage
	viewStorage     service.ViewStorage
	searchAPI       service.SearchAPI
}

// sketchIndices collects the datastore indices that are queryable
// through the sketch, together with the timeline colors and names
// keyed by index name. Deleted timelines and indices that are not
// ready yet are skipped.
func (s *exploreService) sketchIndices(ctx context.Context, sketchID uuid.UUID) ([]string, map[string]string, map[string]string, error) {
	timelines, err := s.timelineStorage.ListTimelines(ctx, sketchID)
	if err != nil {
		return nil, nil, nil, err
	}

	indices := make([]string, 0, len(timelines))
	colors := make(map[string]string, len(timelines))
	names := make(map[string]string, len(timelines))

	for _, timeline := range timelines {
		if timeline.Status == service.EntityStatusDeleted || timeline.SearchIndex == nil {
			continue
		}
		if timeline.SearchIndex.Status != service.IndexStatusReady {
			continue
		}

		indices = append(indices, timeline.SearchIndex.IndexName)
		colors[timeline.SearchIndex.IndexName] = timeline.Color
		names[timeline.SearchIndex.IndexName] = timeline.Name
	}

	return indices, colors, names, nil
}

func (s *exploreService) Explore(ctx context.Context, user *service.User, sketchID uuid.UUID, in *service.ExploreRequest) (*service.Envelope[service.ExploreMeta, *service.SearchEvent], error) {
	const op errs.Op = "exploreService.Explore"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	if !in.HasCriterion() {
		return nil, errs.E(errs.InvalidRequest, op, fmt.Errorf("search request needs a query, star flag, event list or raw query"))
	}

	available, colors, names, err := s.sketchIndices(ctx, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	filter := in.Filter.Normalize()
	indices := service.ResolveIndices(filter.Indices, available)

	result, err := s.searchAPI.Search(ctx, sketchID, in.Query, filter, in.DSL, indices)
	if err != nil {
		return nil, errs.E(op, err)
	}

	// Labels in the datastore are shared between every sketch using
	// the index. Only the labels of this sketch are exposed.
	for _, event := range result.Events {
		labels := make([]string, 0, len(event.Labels))
		for _, label := range event.Labels {
			if label.SketchID == sketchID {
				labels = append(labels, label.Name)
			}
		}
		event.Source[service.LabelField] = labels
	}

	rawFilter, err := service.MarshalFilter(filter)
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	// Remember the search as the user's state view so the UI can
	// restore the last search when the sketch is reopened.
	_, err = s.viewStorage.UpsertStateView(ctx, sketchID, user.ID, &service.ViewUpdate{
		QueryString: in.Query,
		QueryFilter: rawFilter,
		QueryDSL:    in.DSL,
	})
	if err != nil {
		return nil, errs.E(op, err)
	}

	meta := service.ExploreMeta{
		ESTime:         result.Took,
		ESTotalCount:   result.TotalCount,
		TimelineColors: colors,
		TimelineNames:  names,
	}

	return service.NewEnvelope(meta, result.Events), nil
}

func (s *exploreService) Aggregate(ctx context.Context, user *service.User, sketchID uuid.UUID, in *service.AggregationRequest) (*service.Envelope[service.EmptyMeta, json.RawMessage], error) {
	const op errs.Op = "exploreService.Aggregate"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	if in.Query == "" && len(in.DSL) == 0 && !in.Filter.HasCriterion() {
		return nil, errs.E(errs.InvalidRequest, op, fmt.Errorf("aggregation request needs a query, star flag, event list or raw query"))
	}

	available, _, _, err := s.sketchIndices(ctx, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	filter := in.Filter.Normalize()

	params := service.AggregationParams{
		SketchID: sketchID,
		Query:    in.Query,
		Filter:   filter,
		DSL:      in.DSL,
		Indices:  service.ResolveIndices(filter.Indices, available),
	}

	var buckets []json.RawMessage

	switch in.AggType {
	case "heatmap":
		buckets, err = s.searchAPI.Heatmap(ctx, params)
	case "histogram":
		buckets, err = s.searchAPI.Histogram(ctx, params)
	default:
		return nil, errs.E(errs.InvalidRequest, op, fmt.Errorf("unknown aggregation type %q", in.AggType))
	}
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.EmptyMeta{}, buckets), nil
}

func (s *exploreService) BuildQuery(ctx context.Context, user *service.User, sketchID uuid.UUID, in *service.ExploreRequest) (*service.Envelope[service.EmptyMeta, json.RawMessage], error) {
	const op errs.Op = "exploreService.BuildQuery"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	query, err := s.searchAPI.BuildQuery(ctx, sketchID, in.Query, in.Filter.Normalize(), in.DSL)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.EmptyMeta{}, []json.RawMessage{query}), nil
}

func (s *exploreService) CountEvents(ctx context.Context, user *service.User, sketchID uuid.UUID) (*service.Envelope[service.CountMeta, json.RawMessage], error) {
	const op errs.Op = "exploreService.CountEvents"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	indices, _, _, err := s.sketchIndices(ctx, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	count, err := s.searchAPI.Count(ctx, indices)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.CountMeta{Count: count}, []json.RawMessage{}), nil
}

func NewExploreService(
	sketchStorage service.SketchStorage,
	timelineStorage service.TimelineStorage,
	viewStorage service.ViewStorage,
	searchAPI service.SearchAPI,
) *exploreService {
	return &exploreService{
		sketchStorage:   sketchStorage,
		timelineStorage: timelineStorage,
		viewStorage:     viewStorage,
		searchAPI:       searchAPI,
	}
}
