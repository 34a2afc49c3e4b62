package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caseboard/caseboard-backend/pkg/auth"
	"github.com/caseboard/caseboard-backend/pkg/config"
	"github.com/caseboard/caseboard-backend/pkg/database"
	"github.com/caseboard/caseboard-backend/pkg/graphdb"
	"github.com/caseboard/caseboard-backend/pkg/opensearch"
	"github.com/caseboard/caseboard-backend/pkg/requestlogger"
	"github.com/caseboard/caseboard-backend/pkg/service/core"
	apiclients "github.com/caseboard/caseboard-backend/pkg/service/core/api"
	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/routes"
	"github.com/caseboard/caseboard-backend/pkg/service/core/storage"
	"github.com/caseboard/caseboard-backend/pkg/taskqueue"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

var configFilePath = flag.String("config", "config.yaml", "path to config file")

var promErrs = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "caseboard_backend",
	Name:      "errors",
}, []string{"location"})

func main() {
	flag.Parse()

	zlog := zerolog.New(os.Stdout).With().Timestamp().Logger()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	fileParts, err := config.ProcessConfigPath(*configFilePath)
	if err != nil {
		log.WithError(err).Fatal("processing config path")
	}

	cfg, err := config.NewFileSystemLoader().Load(fileParts.FileName, fileParts.Path, "CASEBOARD", config.NewDefaultEnvBinder())
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}

	err = cfg.Validate()
	if err != nil {
		log.WithError(err).Fatal("validating config")
	}

	l, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(l)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	repo, err := database.New(
		cfg.Postgres.ConnectionString(),
		cfg.Postgres.Configuration.MaxIdleConnections,
		cfg.Postgres.Configuration.MaxOpenConnections,
		log.WithField("subsystem", "repo"),
	)
	if err != nil {
		log.WithError(err).Fatal("setting up database")
	}

	searchClient, err := opensearch.New(
		cfg.OpenSearch.Addresses,
		cfg.OpenSearch.Username,
		cfg.OpenSearch.Password,
		zlog.With().Str("subsystem", "opensearch").Logger(),
	)
	if err != nil {
		log.WithError(err).Fatal("setting up opensearch client")
	}

	var graphClient *graphdb.Client
	if cfg.Neo4j.Enabled {
		graphClient, err = graphdb.New(
			ctx,
			cfg.Neo4j.URI,
			cfg.Neo4j.Username,
			cfg.Neo4j.Password,
			zlog.With().Str("subsystem", "graphdb").Logger(),
		)
		if err != nil {
			log.WithError(err).Fatal("setting up graph client")
		}
		defer graphClient.Close(ctx)
	}

	queueClient := taskqueue.New(
		cfg.Redis.Address,
		cfg.Redis.Password,
		cfg.Redis.DB,
		zlog.With().Str("subsystem", "taskqueue").Logger(),
	)
	defer queueClient.Close()

	auth.Init(repo.GetDB())

	stores := storage.NewStores(repo)
	apiClients := apiclients.NewClients(searchClient, graphClient, queueClient)
	services := core.NewServices(cfg, stores, apiClients)

	h := handlers.NewHandlers(services)

	sessionMiddleware := auth.NewMiddleware(
		cfg.Cookies.Session.Name,
		zlog.With().Str("subsystem", "auth").Logger(),
	)

	router := chi.NewRouter()
	router.Use(requestlogger.Middleware(zlog.With().Str("subsystem", "http").Logger(), promErrs, "/metrics"))

	routes.Add(router,
		routes.NewSketchRoutes(routes.NewSketchEndpoints(zlog, h.SketchHandler), sessionMiddleware),
		routes.NewTimelineRoutes(routes.NewTimelineEndpoints(zlog, h.TimelineHandler), sessionMiddleware),
		routes.NewViewRoutes(routes.NewViewEndpoints(zlog, h.ViewHandler), sessionMiddleware),
		routes.NewSearchTemplateRoutes(routes.NewSearchTemplateEndpoints(zlog, h.SearchTemplateHandler), sessionMiddleware),
		routes.NewStoryRoutes(routes.NewStoryEndpoints(zlog, h.StoryHandler), sessionMiddleware),
		routes.NewExploreRoutes(routes.NewExploreEndpoints(zlog, h.ExploreHandler, h.GraphHandler), sessionMiddleware),
		routes.NewEventRoutes(routes.NewEventEndpoints(zlog, h.EventHandler), sessionMiddleware),
		routes.NewUploadRoutes(routes.NewUploadEndpoints(zlog, h.UploadHandler, h.TaskHandler), sessionMiddleware),
		routes.NewMetricsRoutes(routes.NewMetricsEndpoints(prom(repo.Metrics()...))),
	)

	log.Infof("Listening on %s:%s", cfg.Server.Address, cfg.Server.Port)

	server := http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Address, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Shutdown error")
	}
}

func prom(cols ...prometheus.Collector) *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(promErrs)
	r.MustRegister(collectors.NewGoCollector())
	r.MustRegister(cols...)

	return r
}
