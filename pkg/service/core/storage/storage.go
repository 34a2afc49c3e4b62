package storage

import (
	"github.com/caseboard/caseboard-backend/pkg/database"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/service/core/storage/postgres"
)

type Stores struct {
	SketchStorage         service.SketchStorage
	TimelineStorage       service.TimelineStorage
	SearchIndexStorage    service.SearchIndexStorage
	ViewStorage           service.ViewStorage
	SearchTemplateStorage service.SearchTemplateStorage
	StoryStorage          service.StoryStorage
	EventStorage          service.EventStorage
}

func NewStores(
	db *database.Repo,
) *Stores {
	return &Stores{
		SketchStorage:         postgres.NewSketchStorage(db, database.WithTx[postgres.SketchQueries](db)),
		TimelineStorage:       postgres.NewTimelineStorage(db),
		SearchIndexStorage:    postgres.NewSearchIndexStorage(db, database.WithTx[postgres.SearchIndexQueries](db)),
		ViewStorage:           postgres.NewViewStorage(db),
		SearchTemplateStorage: postgres.NewSearchTemplateStorage(db),
		StoryStorage:          postgres.NewStoryStorage(db),
		EventStorage:          postgres.NewEventStorage(db, database.WithTx[postgres.EventQueries](db)),
	}
}
