package core

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.ViewService = &viewService{}

type viewService struct {
	sketchStorage         service.SketchStorage
	viewStorage           service.ViewStorage
	searchTemplateStorage service.SearchTemplateStorage
}

func (s *viewService) ListViews(ctx context.Context, user *service.User, sketchID uuid.UUID) (*service.Envelope[service.EmptyMeta, *service.View], error) {
	const op errs.Op = "viewService.ListViews"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	views, err := s.viewStorage.ListNamedViews(ctx, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.EmptyMeta{}, views), nil
}

func (s *viewService) CreateView(ctx context.Context, user *service.User, sketchID uuid.UUID, in *service.SaveViewRequest) (*service.Created[service.EmptyMeta, *service.View], error) {
	const op errs.Op = "viewService.CreateView"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	name := in.Name
	queryString := in.Query
	filter := in.Filter.Normalize()
	dsl := in.DSL
	var templateID *uuid.UUID

	// A template id overrides whatever else was submitted: the view
	// starts out as an exact copy of the template.
	if in.FromSearchTemplateID != nil {
		template, err := s.searchTemplateStorage.GetSearchTemplate(ctx, *in.FromSearchTemplateID)
		if err != nil {
			return nil, errs.E(op, err)
		}

		templateFilter, err := service.ParseQueryFilter(template.QueryFilter)
		if err != nil {
			return nil, errs.E(errs.Internal, op, fmt.Errorf("parse filter of template %s: %w", template.ID, err))
		}

		name = template.Name
		queryString = template.QueryString
		filter = templateFilter.Normalize()
		dsl = template.QueryDSL
		templateID = &template.ID
	}

	// Snapshotting into a new template widens the index selection to
	// the wildcard so the template works on any sketch.
	if in.NewSearchTemplate {
		filter.Indices = []string{service.AllIndices}

		rawFilter, err := service.MarshalFilter(filter)
		if err != nil {
			return nil, errs.E(errs.Internal, op, err)
		}

		template, err := s.searchTemplateStorage.CreateSearchTemplate(ctx, &service.NewSearchTemplate{
			Name:        name,
			UserID:      user.ID,
			QueryString: queryString,
			QueryFilter: rawFilter,
			QueryDSL:    dsl,
		})
		if err != nil {
			return nil, errs.E(op, err)
		}

		templateID = &template.ID
	}

	rawFilter, err := service.MarshalFilter(filter)
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	view, err := s.viewStorage.CreateView(ctx, &service.NewView{
		Name:             name,
		SketchID:         sketchID,
		UserID:           user.ID,
		QueryString:      queryString,
		QueryFilter:      rawFilter,
		QueryDSL:         dsl,
		SearchTemplateID: templateID,
	})
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewCreated(service.EmptyMeta{}, []*service.View{view}), nil
}

func (s *viewService) GetView(ctx context.Context, user *service.User, sketchID, viewID uuid.UUID) (*service.Envelope[service.ViewMeta, *service.View], error) {
	const op errs.Op = "viewService.GetView"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	view, err := s.viewStorage.GetView(ctx, sketchID, viewID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	// State views are private to the user that owns them.
	if view.Name == "" && view.User != nil && view.User.ID != user.ID {
		return nil, errs.E(errs.Unauthorized, op, errs.UserName(user.Username), fmt.Errorf("state view %s belongs to another user", viewID))
	}

	if view.Status == service.EntityStatusDeleted {
		meta := service.ViewMeta{Deleted: true, Name: view.Name}
		return service.NewEnvelope(meta, []*service.View{}), nil
	}

	// Older clients saved filters without the full attribute set.
	// Fill in the defaults and write the filter back so every reader
	// after this one sees a complete filter.
	filter, err := service.ParseQueryFilter(view.QueryFilter)
	if err != nil {
		return nil, errs.E(errs.Internal, op, fmt.Errorf("parse filter of view %s: %w", view.ID, err))
	}

	rawFilter, err := service.MarshalFilter(filter.Normalize())
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	view, err = s.viewStorage.UpdateView(ctx, sketchID, viewID, view.Name, &service.ViewUpdate{
		QueryString: view.QueryString,
		QueryFilter: rawFilter,
		QueryDSL:    view.QueryDSL,
	})
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.ViewMeta{}, []*service.View{view}), nil
}

func (s *viewService) UpdateView(ctx context.Context, user *service.User, sketchID, viewID uuid.UUID, in *service.SaveViewRequest) (*service.Created[service.EmptyMeta, *service.View], error) {
	const op errs.Op = "viewService.UpdateView"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	existing, err := s.viewStorage.GetView(ctx, sketchID, viewID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	name := existing.Name
	if in.Name != "" {
		name = in.Name
	}

	// A raw datastore query replaces the query string entirely.
	queryString := in.Query
	if len(in.DSL) > 0 {
		queryString = ""
	}

	rawFilter, err := service.MarshalFilter(in.Filter.Normalize())
	if err != nil {
		return nil, errs.E(errs.Internal, op, err)
	}

	view, err := s.viewStorage.UpdateView(ctx, sketchID, viewID, name, &service.ViewUpdate{
		QueryString: queryString,
		QueryFilter: rawFilter,
		QueryDSL:    in.DSL,
	})
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewCreated(service.EmptyMeta{}, []*service.View{view}), nil
}

func (s *viewService) DeleteView(ctx context.Context, user *service.User, sketchID, viewID uuid.UUID) error {
	const op errs.Op = "viewService.DeleteView"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return errs.E(op, err)
	}

	writable, err := s.sketchStorage.HasPermission(ctx, user.ID, sketchID, service.PermissionWrite)
	if err != nil {
		return errs.E(op, err)
	}
	if !writable {
		return errs.E(errs.Unauthorized, op, errs.UserName(user.Username), fmt.Errorf("user lacks write permission on sketch %s", sketchID))
	}

	_, err = s.viewStorage.GetView(ctx, sketchID, viewID)
	if err != nil {
		return errs.E(op, err)
	}

	err = s.viewStorage.SetViewStatus(ctx, sketchID, viewID, service.EntityStatusDeleted)
	if err != nil {
		return errs.E(op, err)
	}

	return nil
}

func NewViewService(
	sketchStorage service.SketchStorage,
	viewStorage service.ViewStorage,
	searchTemplateStorage service.SearchTemplateStorage,
) *viewService {
	return &viewService{
		sketchStorage:         sketchStorage,
		viewStorage:           viewStorage,
		searchTemplateStorage: searchTemplateStorage,
	}
}
