package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/iwvelando/carbon-footprint/internal/cache"
	"github.com/iwvelando/carbon-footprint/internal/config"
	"github.com/iwvelando/carbon-footprint/internal/footprint"
	"github.com/iwvelando/carbon-footprint/internal/optimizer"
	"github.com/iwvelando/carbon-footprint/internal/report"
	"github.com/iwvelando/carbon-footprint/pkg/constants"
	"github.com/iwvelando/carbon-footprint/pkg/output"
)

// Options configures the HTTP handler. Zero values select defaults: the
// embedded factor table, an in-memory cache, no rate limiting.
type Options struct {
	MaxUploadSize int64
	Version       string
	Factors       *footprint.EmissionFactors
	Cache         cache.Cache
	CacheTTL      time.Duration
	RateLimiter   *RateLimiter
}

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	factors       *footprint.EmissionFactors
	calculator    *footprint.Calculator
	cache         cache.Cache
	cacheTTL      time.Duration
	limiter       *RateLimiter
	metrics       *metrics
}

// NewHandler constructs the HTTP handler that serves the footprint API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxUploadSize := opts.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	factors := opts.Factors
	if factors == nil {
		factors = footprint.DefaultFactors()
	}

	reportCache := opts.Cache
	if reportCache == nil {
		reportCache = cache.NewMemoryCache()
	}
	cacheTTL := opts.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = constants.DefaultCacheTTLSeconds * time.Second
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		factors:       factors,
		calculator:    footprint.NewCalculator(factors),
		cache:         reportCache,
		cacheTTL:      cacheTTL,
		limiter:       opts.RateLimiter,
		metrics:       newMetrics(),
	}

	mux := http.NewServeMux()

	// Single calculation from JSON or a posted form
	mux.Handle("/api/calculate", h.route("calculate", true, h.handleCalculate))

	// Scenario comparison from an uploaded YAML configuration
	mux.Handle("/api/upload", h.route("upload", true, h.handleUpload))

	mux.Handle("/api/factors", h.route("factors", false, h.handleFactors))
	mux.Handle("/api/version", h.route("version", false, h.handleVersion))
	mux.Handle("/metrics", h.metrics.handler())

	return withRequestID(withRequestLogging(logger, mux))
}

type calculateRequest struct {
	footprint.ActivityInput
	Lang string `json:"lang,omitempty"`
}

type calculateResponse struct {
	ID       string            `json:"id"`
	Report   footprint.Report  `json:"report"`
	Labels   map[string]string `json:"labels"`
	Cached   bool              `json:"cached"`
	Duration string            `json:"duration"`
}

type uploadResponse struct {
	ID        string          `json:"id"`
	Scenarios []output.Result `json:"scenarios"`
	CSV       string          `json:"csv"`
	Warnings  []string        `json:"warnings,omitempty"`
	Duration  string          `json:"duration"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Selector  string `json:"selector,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	input, lang, err := decodeCalculateRequest(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}
	input = input.WithDefaultSelectors()

	rep, cached, err := h.calculate(r.Context(), input)
	if err != nil {
		h.respondCalculationError(w, r, err, op)
		return
	}

	elapsed := time.Since(start)
	tag := footprint.ParseLanguage(lang)
	labels := make(map[string]string, len(footprint.Categories()))
	for _, c := range footprint.Categories() {
		labels[string(c)] = c.Label(tag)
	}

	h.logger.Info("footprint computed",
		zap.String("op", op),
		zap.String("request_id", r.Header.Get(RequestIDHeader)),
		zap.Float64("totalKg", rep.Breakdown.Total),
		zap.Int("trees", rep.Breakdown.Trees),
		zap.Bool("cached", cached),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		ID:       ulid.Make().String(),
		Report:   rep,
		Labels:   labels,
		Cached:   cached,
		Duration: elapsed.String(),
	})
}

// decodeCalculateRequest reads a JSON body, or form fields when the request
// is form-encoded. Omitted period and recycling factor take their defaults.
func decodeCalculateRequest(r *http.Request) (footprint.ActivityInput, string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return footprint.ActivityInput{}, "", err
		}
		input := footprint.FromForm(r.PostForm)
		if !r.PostForm.Has(footprint.FieldPeriod) {
			input.PeriodDays = constants.DefaultPeriodDays
		}
		if !r.PostForm.Has(footprint.FieldRecycling) {
			input.RecyclingFactor = constants.DefaultRecyclingFactor
		}
		return input, r.PostForm.Get("lang"), nil
	}

	req := calculateRequest{
		ActivityInput: footprint.ActivityInput{
			PeriodDays:      constants.DefaultPeriodDays,
			RecyclingFactor: constants.DefaultRecyclingFactor,
		},
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return footprint.ActivityInput{}, "", err
	}
	return req.ActivityInput, req.Lang, nil
}

// calculate serves a report from the cache when possible. Cache failures are
// logged and never fail the request.
func (h *handler) calculate(ctx context.Context, input footprint.ActivityInput) (footprint.Report, bool, error) {
	const op = "server.calculate"

	key, err := cache.Key(input.Normalize(), h.factors.Info())
	if err != nil {
		h.logger.Warn("skipping report cache", zap.String("op", op), zap.Error(err))
	} else {
		data, ok, err := h.cache.Get(ctx, key)
		switch {
		case err != nil:
			h.metrics.cacheLookups.WithLabelValues("error").Inc()
			h.logger.Warn("report cache lookup failed", zap.String("op", op), zap.Error(err))
		case ok:
			var rep footprint.Report
			if err := json.Unmarshal(data, &rep); err == nil {
				h.metrics.cacheLookups.WithLabelValues("hit").Inc()
				return rep, true, nil
			}
			h.metrics.cacheLookups.WithLabelValues("error").Inc()
		default:
			h.metrics.cacheLookups.WithLabelValues("miss").Inc()
		}
	}

	rep, err := h.calculator.Calculate(input)
	if err != nil {
		h.countCalculation(err)
		return footprint.Report{}, false, err
	}
	h.countCalculation(nil)
	h.metrics.totalKg.Observe(rep.Breakdown.Total)

	if key != "" {
		if data, err := json.Marshal(rep); err == nil {
			if err := h.cache.Set(ctx, key, data, h.cacheTTL); err != nil {
				h.logger.Warn("failed to store report in cache", zap.String("op", op), zap.Error(err))
			}
		}
	}
	return rep, false, nil
}

func (h *handler) countCalculation(err error) {
	switch {
	case err == nil:
		h.metrics.calculations.WithLabelValues("ok").Inc()
	case isInputError(err):
		h.metrics.calculations.WithLabelValues("invalid").Inc()
	default:
		h.metrics.calculations.WithLabelValues("error").Inc()
	}
}

func isInputError(err error) bool {
	return errors.Is(err, footprint.ErrUnknownCategoryKey) ||
		errors.Is(err, footprint.ErrRecyclingFactorOutOfRange) ||
		errors.Is(err, footprint.ErrTotalOutOfRange)
}

func (h *handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpload"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	// Uploaded configurations always use the server's factor table.
	warnings := cfg.ValidateConfiguration()
	if cfg.Factors.File != "" {
		warnings = append(warnings, fmt.Sprintf("factor table file '%s' is ignored by the server", cfg.Factors.File))
	}

	budgets, err := runBudgets(h.logger, cfg, h.calculator)
	if err != nil {
		if isInputError(err) {
			h.respondCalculationError(w, r, err, op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusUnprocessableEntity, err.Error(), op)
		return
	}

	results, err := report.Generate(h.logger, cfg, h.calculator)
	if err != nil {
		h.countCalculation(err)
		h.respondCalculationError(w, r, err, op)
		return
	}
	budgets.Apply(results)
	for _, result := range results {
		h.countCalculation(nil)
		h.metrics.totalKg.Observe(result.Report.Breakdown.Total)
	}

	csv, err := output.CsvString(results)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to render csv: %v", err), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("scenarios computed",
		zap.String("op", op),
		zap.String("request_id", r.Header.Get(RequestIDHeader)),
		zap.Int("scenarios", len(results)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, uploadResponse{
		ID:        ulid.Make().String(),
		Scenarios: results,
		CSV:       csv,
		Warnings:  warnings,
		Duration:  elapsed.String(),
	})
}

func runBudgets(logger *zap.Logger, cfg *config.Configuration, calc *footprint.Calculator) (*optimizer.Result, error) {
	runner, err := optimizer.NewRunner(logger, cfg, calc)
	if err != nil {
		return nil, err
	}
	return runner.Run()
}

func (h *handler) handleFactors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, h.factors.Spec())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	info := h.factors.Info()
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version":       h.version,
		"factorTable":   info.Name,
		"factorVersion": info.Version,
	})
}

// respondCalculationError maps calculation failures: invalid input is 422,
// anything else is 500.
func (h *handler) respondCalculationError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if !isInputError(err) {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to compute footprint: %v", err), op)
		return
	}

	resp := errorResponse{Error: err.Error(), RequestID: r.Header.Get(RequestIDHeader)}
	var keyErr *footprint.KeyError
	if errors.As(err, &keyErr) {
		resp.Selector = keyErr.Selector
	}
	h.logger.Info("rejected footprint input",
		zap.String("op", op),
		zap.String("request_id", resp.RequestID),
		zap.String("error", resp.Error),
	)
	h.writeJSON(w, http.StatusUnprocessableEntity, resp)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	requestID := r.Header.Get(RequestIDHeader)
	h.logger.Error("footprint request failed",
		zap.String("op", op),
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body.Bytes()); err != nil {
		h.logger.Warn("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
