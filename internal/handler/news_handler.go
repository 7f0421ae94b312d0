package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"news-api/internal/domain"
	"news-api/internal/service"
)

type NewsHandler struct {
	newsService   *service.NewsService
	ingestService *service.IngestService
}

func NewNewsHandler(newsService *service.NewsService, ingestService *service.IngestService) *NewsHandler {
	return &NewsHandler{
		newsService:   newsService,
		ingestService: ingestService,
	}
}

func (h *NewsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ingest/{source}", h.IngestSource).Methods("POST")
	api.HandleFunc("/news", h.ListNews).Methods("GET")
	api.HandleFunc("/news/search", h.SearchNews).Methods("GET")
	api.HandleFunc("/news/stats", h.GetStats).Methods("GET")
	api.HandleFunc("/news/{id:[0-9]+}", h.GetNews).Methods("GET")
	api.HandleFunc("/news/{id:[0-9]+}", h.DeleteNews).Methods("DELETE")
}

// newsResponse adds the flattened category label next to the canonical
// record; the list form stays authoritative.
type newsResponse struct {
	domain.News
	Category string `json:"category"`
}

type paginatedResponse struct {
	Results    []newsResponse `json:"results"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

func toNewsResponse(news domain.News) newsResponse {
	return newsResponse{News: news, Category: news.CategoryLabel()}
}

func toPaginatedResponse(result *domain.PaginatedResult) paginatedResponse {
	return paginatedResponse{
		Results: lo.Map(result.Results, func(news domain.News, _ int) newsResponse {
			return toNewsResponse(news)
		}),
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}
}

func (h *NewsHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NewsHandler) IngestSource(w http.ResponseWriter, r *http.Request) {
	sourceKey := mux.Vars(r)["source"]

	result, err := h.ingestService.Ingest(r.Context(), sourceKey)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownSource):
			respondError(w, http.StatusBadRequest, "unknown source: "+sourceKey)
		case errors.Is(err, domain.ErrFeedFetch), errors.Is(err, domain.ErrFeedParse):
			log.Printf("Error ingesting source %q: %v", sourceKey, err)
			respondError(w, http.StatusBadGateway, "feed unavailable")
		default:
			log.Printf("Error ingesting source %q: %v", sourceKey, err)
			respondError(w, http.StatusInternalServerError, "ingestion failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *NewsHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	pagination, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	result, err := h.newsService.GetNews(r.Context(), pagination)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPagination) {
			respondError(w, http.StatusBadRequest, "invalid pagination parameters")
			return
		}
		log.Printf("Error getting news: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to get news")
		return
	}

	respondJSON(w, http.StatusOK, toPaginatedResponse(result))
}

func (h *NewsHandler) SearchNews(w http.ResponseWriter, r *http.Request) {
	pagination, err := parsePagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid pagination parameters")
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid filter parameters")
		return
	}

	result, err := h.newsService.SearchNews(r.Context(), filters, pagination)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPagination):
			respondError(w, http.StatusBadRequest, "invalid pagination parameters")
		case errors.Is(err, domain.ErrInvalidFilter):
			respondError(w, http.StatusBadRequest, "invalid filter parameters")
		default:
			log.Printf("Error searching news: %v", err)
			respondError(w, http.StatusInternalServerError, "failed to search news")
		}
		return
	}

	respondJSON(w, http.StatusOK, toPaginatedResponse(result))
}

func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid news id")
		return
	}

	news, err := h.newsService.GetNewsByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNewsNotFound) {
			respondError(w, http.StatusNotFound, "news not found")
			return
		}
		log.Printf("Error getting news %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to get news")
		return
	}

	respondJSON(w, http.StatusOK, toNewsResponse(*news))
}

func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid news id")
		return
	}

	deleted, err := h.newsService.DeleteNews(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting news %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "failed to delete news")
		return
	}

	if !deleted {
		respondError(w, http.StatusNotFound, "news not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *NewsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.newsService.GetStats(r.Context())
	if err != nil {
		log.Printf("Error getting stats: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func parsePagination(r *http.Request) (domain.Pagination, error) {
	pagination := domain.Pagination{Page: 1, Limit: 10}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, domain.ErrInvalidPagination
		}
		pagination.Page = page
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, domain.ErrInvalidPagination
		}
		pagination.Limit = limit
	}

	return pagination, pagination.Validate()
}

func parseFilters(r *http.Request) (domain.Filters, error) {
	query := r.URL.Query()

	filters := domain.Filters{
		Search:   query.Get("search"),
		Category: query.Get("category"),
	}

	if raw := query.Get("source"); raw != "" {
		source, err := domain.ParseSource(raw)
		if err != nil {
			return filters, domain.ErrInvalidFilter
		}
		filters.Source = source
	}

	if raw := query.Get("from"); raw != "" {
		from, err := parseFilterDate(raw)
		if err != nil {
			return filters, domain.ErrInvalidFilter
		}
		filters.From = from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := parseFilterDate(raw)
		if err != nil {
			return filters, domain.ErrInvalidFilter
		}
		filters.To = to
	}

	return filters, filters.Validate()
}

func parseFilterDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
