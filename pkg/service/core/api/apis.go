package api

import (
	"github.com/caseboard/caseboard-backend/pkg/graphdb"
	"github.com/caseboard/caseboard-backend/pkg/opensearch"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/taskqueue"
)

type Clients struct {
	SearchAPI    service.SearchAPI
	GraphAPI     service.GraphAPI
	TaskQueueAPI service.TaskQueueAPI
}

func NewClients(
	searchClient *opensearch.Client,
	graphClient *graphdb.Client,
	queueClient *taskqueue.Client,
) *Clients {
	clients := &Clients{
		SearchAPI:    searchClient,
		TaskQueueAPI: queueClient,
	}

	// The graph datastore is optional. A nil client must not end up
	// as a non-nil interface value.
	if graphClient != nil {
		clients.GraphAPI = graphClient
	}

	return clients
}
