package pdfgen

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/enerdocs/pdfgen/internal/fileutil"
)

// maxBodySize caps generate request bodies at 1MB.
const maxBodySize = 1 << 20

// Handler builds the HTTP surface around svc. Routes mirror the
// original service:
//
//	POST /generate/welcome-letter
//	POST /generate/contract
//	POST /generate/billing-invoice
//	GET  /results/{filename}
//	GET  /health
func Handler(svc *Service, cfg *Config, log *zap.Logger) http.Handler {
	h := &server{svc: svc, cfg: cfg, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate/welcome-letter", h.generate(TemplateWelcome))
	mux.HandleFunc("POST /generate/contract", h.generate(TemplateContract))
	mux.HandleFunc("POST /generate/billing-invoice", h.generate(TemplateBillingInvoice))
	mux.HandleFunc("GET /results/{filename}", h.results)
	mux.HandleFunc("GET /health", h.health)

	return recoverWrapper(requestLogWrapper(mux, log), log)
}

type server struct {
	svc *Service
	cfg *Config
	log *zap.Logger
}

// generateResponse is the success payload for the generate endpoints.
type generateResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *server) generate(id TemplateID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := decodeRequest(r, &req); err != nil {
			writeError(w, h.log, http.StatusBadRequest, err.Error())
			return
		}

		path, err := h.svc.Generate(r.Context(), id, &req, "")
		if err != nil {
			writeError(w, h.log, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, h.log, http.StatusOK, generateResponse{
			Status:   "success",
			Filename: filepath.Base(path),
			Path:     path,
		})
	}
}

// decodeRequest parses the JSON body. An absent body, a JSON null and
// an empty object are all rejected, matching the original service's
// "no JSON data provided" check.
func decodeRequest(r *http.Request, req *Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ErrEmptyRequest
	}
	if len(raw) == 0 {
		return ErrEmptyRequest
	}

	return json.Unmarshal(body, req)
}

// results serves a generated PDF by filename. Unsafe names are
// rejected before any filesystem access.
func (h *server) results(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if err := fileutil.ValidatePDFName(filename); err != nil {
		writeError(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	data, err := os.ReadFile(filepath.Join(h.cfg.ResultsDir, filename)) // #nosec G304 -- name validated above
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, h.log, http.StatusNotFound, "File not found")
			return
		}
		writeError(w, h.log, http.StatusInternalServerError, "failed to read file")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error("writing PDF response", zap.Error(err))
	}
}

func (h *server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.log, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("writing JSON response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, log *zap.Logger, code int, msg string) {
	writeJSON(w, log, code, errorResponse{Status: "error", Message: msg})
}

// recoverWrapper converts handler panics into 500 responses.
func recoverWrapper(inner http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()))
				writeError(w, log, http.StatusInternalServerError, "internal server error")
			}
		}()
		inner.ServeHTTP(w, r)
	})
}

// requestLogWrapper tags each request with an ID and logs its outcome.
func requestLogWrapper(inner http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		inner.ServeHTTP(rec, r)

		log.Info("request",
			zap.String("id", uuid.NewString()),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
