package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alex-user-go/tripplanner/internal/chat"
	"github.com/alex-user-go/tripplanner/internal/middleware"
	"github.com/alex-user-go/tripplanner/internal/notify"
	"github.com/alex-user-go/tripplanner/internal/obs"
	"github.com/alex-user-go/tripplanner/internal/ratelimit"
	"github.com/alex-user-go/tripplanner/internal/search"
	"github.com/alex-user-go/tripplanner/internal/search/cache"
	"github.com/alex-user-go/tripplanner/internal/search/types"
	"github.com/alex-user-go/tripplanner/internal/stay"
	"github.com/alex-user-go/tripplanner/internal/store"
	"github.com/alex-user-go/tripplanner/internal/trip"
)

// Handler handles HTTP requests.
type Handler struct {
	aggregator  *search.Aggregator
	cache       *cache.Cache
	router      *chat.Router
	stays       *stay.Service
	trips       store.Store
	rateLimiter *ratelimit.Limiter
	metrics     *obs.Metrics
	logger      *slog.Logger
}

// New creates a new Handler.
func New(
	aggregator *search.Aggregator,
	searchCache *cache.Cache,
	router *chat.Router,
	stays *stay.Service,
	trips store.Store,
	rateLimiter *ratelimit.Limiter,
	metrics *obs.Metrics,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		aggregator:  aggregator,
		cache:       searchCache,
		router:      router,
		stays:       stays,
		trips:       trips,
		rateLimiter: rateLimiter,
		metrics:     metrics,
		logger:      logger,
	}
}

// Register wires every route onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /search", h.SearchHandler)
	mux.HandleFunc("POST /chat", h.ChatHandler)
	mux.HandleFunc("GET /accommodations", h.AccommodationsHandler)
	mux.HandleFunc("POST /trips", h.CreateTripHandler)
	mux.HandleFunc("GET /trips/{id}/calendar.ics", h.TripCalendarHandler)
}

// SearchResponse represents the complete /search API response.
type SearchResponse struct {
	Search SearchInfo    `json:"search"`
	Stats  SearchStats   `json:"stats"`
	Result *types.Result `json:"result"`
}

// SearchInfo echoes the search parameters.
type SearchInfo struct {
	Query string `json:"query"`
}

// SearchStats contains search statistics.
type SearchStats struct {
	Cache      string `json:"cache"`
	Fallback   bool   `json:"fallback"`
	DurationMs int64  `json:"duration_ms"`
}

// SearchHandler handles GET /search requests.
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	requestID := middleware.RequestID(r.Context())

	ip := ExtractIP(r)
	if !h.rateLimiter.Allow(ip) {
		h.logger.Warn("rate limit exceeded", "request_id", requestID, "ip", ip)
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	key := h.cache.Key(query)
	result, cacheHit := h.cache.GetOrSearch(r.Context(), key, func() *types.Result {
		return h.aggregator.Search(r.Context(), query)
	})

	cacheStatus := "miss"
	if cacheHit {
		cacheStatus = "hit"
		h.metrics.IncCacheHits()
	}

	response := SearchResponse{
		Search: SearchInfo{Query: query},
		Stats: SearchStats{
			Cache:      cacheStatus,
			Fallback:   result.IsFallback,
			DurationMs: time.Since(startTime).Milliseconds(),
		},
		Result: result,
	}
	writeJSON(w, http.StatusOK, response, h.logger)
}

// ChatRequest is the /chat request body.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the /chat response body.
type ChatResponse struct {
	Reply           string `json:"reply"`
	LastSearchQuery string `json:"lastSearchQuery,omitempty"`
}

// ChatHandler handles POST /chat requests.
func (h *Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	ip := ExtractIP(r)
	if !h.rateLimiter.Allow(ip) {
		h.logger.Warn("rate limit exceeded", "request_id", requestID, "ip", ip)
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.router.Handle(r.Context(), req.Message)
	state := h.router.State()
	lastQuery, _ := state.LastSearchQuery()
	writeJSON(w, http.StatusOK, ChatResponse{
		Reply:           reply,
		LastSearchQuery: lastQuery,
	}, h.logger)
}

// AccommodationsResponse is the /accommodations response body.
type AccommodationsResponse struct {
	Destination    string               `json:"destination"`
	Accommodations []stay.Accommodation `json:"accommodations"`
}

// AccommodationsHandler handles GET /accommodations requests.
func (h *Handler) AccommodationsHandler(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	destination := strings.TrimSpace(r.URL.Query().Get("destination"))
	if destination == "" {
		writeError(w, http.StatusBadRequest, "destination is required")
		return
	}

	budget := 0.0
	if raw := r.URL.Query().Get("budget"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "budget must be a non-negative number")
			return
		}
		budget = parsed
	}

	accommodations := h.stays.Find(r.Context(), destination, budget)
	h.logger.Debug("accommodations found",
		"request_id", requestID,
		"destination", destination,
		"count", len(accommodations),
	)
	writeJSON(w, http.StatusOK, AccommodationsResponse{
		Destination:    destination,
		Accommodations: accommodations,
	}, h.logger)
}

// CreateTripRequest is the /trips request body.
type CreateTripRequest struct {
	UserID      string  `json:"userId"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
}

// TripResponse is the persisted trip as returned by the API.
type TripResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
}

// CreateTripResponse is the /trips response body.
type CreateTripResponse struct {
	Trip         TripResponse   `json:"trip"`
	Notification notify.Payload `json:"notification"`
}

// CreateTripHandler handles POST /trips requests.
func (h *Handler) CreateTripHandler(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	var req CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateTripRequest(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t := &store.Trip{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Status:      store.TripStatusPlanned,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.trips.Create(r.Context(), t); err != nil {
		h.logger.Error("failed to create trip", "request_id", requestID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create trip")
		return
	}

	h.logger.Info("trip created",
		"request_id", requestID,
		"trip_id", t.ID,
		"destination", t.Destination,
	)
	writeJSON(w, http.StatusCreated, CreateTripResponse{
		Trip: TripResponse{
			ID:          t.ID,
			UserID:      t.UserID,
			Destination: t.Destination,
			StartDate:   t.StartDate,
			EndDate:     t.EndDate,
			Budget:      t.Budget,
			Status:      t.Status,
		},
		Notification: notify.TripPlanned(t.Destination, t.StartDate),
	}, h.logger)
}

func validateTripRequest(req *CreateTripRequest) error {
	req.UserID = strings.TrimSpace(req.UserID)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.UserID == "" {
		return fmt.Errorf("userId is required")
	}
	if req.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return fmt.Errorf("startDate must be in YYYY-MM-DD format")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return fmt.Errorf("endDate must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return fmt.Errorf("endDate must not be before startDate")
	}
	if req.Budget < 0 {
		return fmt.Errorf("budget must be a non-negative number")
	}
	return nil
}

// TripCalendarHandler handles GET /trips/{id}/calendar.ics requests.
func (h *Handler) TripCalendarHandler(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	id := r.PathValue("id")
	t, err := h.trips.FindTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip not found")
			return
		}
		h.logger.Error("failed to load trip", "request_id", requestID, "trip_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load trip")
		return
	}

	ics, err := trip.ExportCalendar(t)
	if err != nil {
		h.logger.Error("failed to render calendar", "request_id", requestID, "trip_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render calendar")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", t.Destination+".ics"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ics))
}

// ExtractIP extracts the client IP from the request.
// Checks X-Forwarded-For, X-Real-IP, then falls back to RemoteAddr.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Can't change status after WriteHeader, just log
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
