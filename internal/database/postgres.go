package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Manager struct {
	DB *sqlx.DB
}

type Config struct {
	ConnectionString string
	Host             string
	Port             string
	User             string
	Password         string
	DBName           string
}

func NewManager(cfg Config) (*Manager, error) {
	var connectionString string

	if cfg.ConnectionString != "" {
		connectionString = cfg.ConnectionString
	} else {
		connectionString = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName,
		)
	}

	db, err := sqlx.Connect("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Successfully connected to the database")

	manager := &Manager{DB: db}

	if err := manager.runMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return manager, nil
}

func (m *Manager) runMigrations() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS news (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			pub_date TIMESTAMP WITH TIME ZONE NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			categories TEXT[] NOT NULL DEFAULT '{}',
			ingestion_date TIMESTAMP WITH TIME ZONE NOT NULL,
			source TEXT NOT NULL CHECK (source IN ('chile', 'argentina', 'mexico', 'tecnologia')),
			keywords TEXT[] NOT NULL DEFAULT '{}',
			unique_id TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(link),
			UNIQUE(unique_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_news_source ON news(source)`,
		`CREATE INDEX IF NOT EXISTS idx_news_pub_date ON news(pub_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_news_keywords ON news USING GIN(keywords)`,
		`CREATE INDEX IF NOT EXISTS idx_news_categories ON news USING GIN(categories)`,
		`CREATE INDEX IF NOT EXISTS idx_news_fulltext ON news
			USING GIN(to_tsvector('spanish', title || ' ' || description))`,
	}

	for i, migration := range migrations {
		if _, err := m.DB.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func (m *Manager) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

func (m *Manager) GetDB() *sqlx.DB {
	return m.DB
}
