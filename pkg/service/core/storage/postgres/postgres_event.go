package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/database"
	"github.com/caseboard/caseboard-backend/pkg/database/gensql"
	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

type EventQueries interface {
	UpsertEvent(ctx context.Context, params gensql.UpsertEventParams) (gensql.Event, error)
	CreateEventComment(ctx context.Context, params gensql.CreateEventCommentParams) (gensql.EventComment, error)
	UpsertLabel(ctx context.Context, params gensql.UpsertLabelParams) (gensql.Label, error)
	AttachLabelToEvent(ctx context.Context, params gensql.AttachLabelToEventParams) error
}

var _ service.EventStorage = &eventStorage{}

type EventQueriesWithTxFn func() (EventQueries, database.Transacter, error)

type eventStorage struct {
	db       *database.Repo
	withTxFn EventQueriesWithTxFn
}

func (s *eventStorage) GetEventByDocument(ctx context.Context, sketchID, searchIndexID uuid.UUID, documentID string) (*service.Event, error) {
	const op errs.Op = "eventStorage.GetEventByDocument"

	raw, err := s.db.Querier.GetEventByDocument(ctx, gensql.GetEventByDocumentParams{
		SketchID:      sketchID,
		SearchIndexID: searchIndexID,
		DocumentID:    documentID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	return &service.Event{
		ID:            raw.ID,
		SketchID:      raw.SketchID,
		SearchIndexID: raw.SearchIndexID,
		DocumentID:    raw.DocumentID,
		DocumentType:  raw.DocumentType,
		CreatedAt:     raw.CreatedAt,
		UpdatedAt:     raw.UpdatedAt,
	}, nil
}

func (s *eventStorage) AnnotateEvents(ctx context.Context, user *service.User, annotations []*service.NewAnnotation) ([]*service.Annotation, error) {
	const op errs.Op = "eventStorage.AnnotateEvents"

	q, tx, err := s.withTxFn()
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}
	defer tx.Rollback()

	result := make([]*service.Annotation, 0, len(annotations))

	for _, annotation := range annotations {
		event, err := q.UpsertEvent(ctx, gensql.UpsertEventParams{
			SketchID:      annotation.SketchID,
			SearchIndexID: annotation.SearchIndexID,
			DocumentID:    annotation.DocumentID,
			DocumentType:  annotation.DocumentType,
		})
		if err != nil {
			return nil, errs.E(errs.Database, op, err)
		}

		switch annotation.Type {
		case service.AnnotationTypeComment:
			comment, err := q.CreateEventComment(ctx, gensql.CreateEventCommentParams{
				EventID: event.ID,
				UserID:  user.ID,
				Comment: annotation.Text,
			})
			if err != nil {
				return nil, errs.E(errs.Database, op, err)
			}

			result = append(result, &service.Annotation{
				Type: service.AnnotationTypeComment,
				Comment: &service.Comment{
					Comment: comment.Comment,
					User: &service.User{
						ID:       user.ID,
						Username: user.Username,
					},
					CreatedAt: comment.CreatedAt,
					UpdatedAt: comment.UpdatedAt,
				},
			})
		case service.AnnotationTypeLabel:
			label, err := q.UpsertLabel(ctx, gensql.UpsertLabelParams{
				Label:  annotation.Text,
				UserID: user.ID,
			})
			if err != nil {
				return nil, errs.E(errs.Database, op, err)
			}

			err = q.AttachLabelToEvent(ctx, gensql.AttachLabelToEventParams{
				EventID: event.ID,
				LabelID: label.ID,
			})
			if err != nil {
				return nil, errs.E(errs.Database, op, err)
			}

			result = append(result, &service.Annotation{
				Type: service.AnnotationTypeLabel,
				Label: &service.Label{
					Name: label.Label,
					User: &service.User{
						ID:       user.ID,
						Username: user.Username,
					},
					CreatedAt: label.CreatedAt,
					UpdatedAt: label.UpdatedAt,
				},
			})
		default:
			return nil, errs.E(errs.Invalid, op, fmt.Errorf("unknown annotation type %q", annotation.Type))
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	return result, nil
}

func (s *eventStorage) ListEventComments(ctx context.Context, eventID uuid.UUID) ([]*service.Comment, error) {
	const op errs.Op = "eventStorage.ListEventComments"

	raw, err := s.db.Querier.ListEventComments(ctx, eventID)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	comments := make([]*service.Comment, len(raw))
	for i, r := range raw {
		comments[i] = &service.Comment{
			Comment: r.Comment,
			User: &service.User{
				ID:       r.UserID,
				Username: r.UserUsername,
			},
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}
	}

	return comments, nil
}

func NewEventStorage(db *database.Repo, fn EventQueriesWithTxFn) *eventStorage {
	return &eventStorage{
		db:       db,
		withTxFn: fn,
	}
}
