package app

import (
	"github.com/gorilla/mux"

	"news-api/config"
	"news-api/internal/database"
	"news-api/internal/feed"
	"news-api/internal/handler"
	"news-api/internal/repository"
	"news-api/internal/service"
	"news-api/pkg/datetime"
	"news-api/pkg/keywords"
)

type Application struct {
	Router      *mux.Router
	Config      *config.Config
	DBManager   *database.Manager
	NewsHandler *handler.NewsHandler
}

// New wires every dependency explicitly; nothing holds package-level state.
func New(cfg *config.Config) (*Application, error) {
	dbManager, err := database.NewManager(database.Config{
		ConnectionString: cfg.DatabaseURL,
		Host:             cfg.DBHost,
		Port:             cfg.DBPort,
		User:             cfg.DBUser,
		Password:         cfg.DBPassword,
		DBName:           cfg.DBName,
	})
	if err != nil {
		return nil, err
	}

	newsRepository := repository.NewNewsRepository(dbManager.GetDB())
	extractor := keywords.NewExtractor()
	dateFormatter := datetime.NewFormatter()
	normalizer := service.NewNormalizer(extractor, dateFormatter)
	fetcher := feed.NewFetcher(cfg.HTTPTimeout)
	parser := feed.NewParser()
	ingestService := service.NewIngestService(fetcher, parser, normalizer, newsRepository)
	newsService := service.NewNewsService(newsRepository)
	newsHandler := handler.NewNewsHandler(newsService, ingestService)

	router := mux.NewRouter()
	newsHandler.RegisterRoutes(router)

	return &Application{
		Router:      router,
		Config:      cfg,
		DBManager:   dbManager,
		NewsHandler: newsHandler,
	}, nil
}

func (a *Application) Close() error {
	if a.DBManager != nil {
		return a.DBManager.Close()
	}
	return nil
}
