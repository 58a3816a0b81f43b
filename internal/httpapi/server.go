package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nexus/internal/assets"
	"nexus/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListModels() []types.ModelDescriptor
	Ready() bool
}

// AssetReader returns static front-end files by name.
type AssetReader interface {
	Read(name string) (assets.Asset, error)
}

// NewMux builds the router serving the front-end and the models endpoint.
func NewMux(svc Service, src AssetReader) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog)
	if metricsEnabled {
		r.Use(MetricsMiddleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", indexHandler(src))
	r.Get("/style.css", stylesheetHandler(src))
	r.Get("/script.js", scriptHandler(src))
	r.Get("/models", listModelsHandler(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	if metricsEnabled {
		r.Get("/metrics", promhttp.Handler().ServeHTTP)
	}
	MountSwagger(r)

	return r
}

// indexHandler godoc
//
//	@Summary	Chat page
//	@Tags		assets
//	@Produce	html
//	@Success	200	{string}	string	"index.html"
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/ [get]
func indexHandler(src AssetReader) http.HandlerFunc {
	return staticHandler(src, assets.Index, "text/html; charset=utf-8")
}

// stylesheetHandler godoc
//
//	@Summary	Page stylesheet
//	@Tags		assets
//	@Produce	text/css
//	@Success	200	{string}	string	"style.css"
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/style.css [get]
func stylesheetHandler(src AssetReader) http.HandlerFunc {
	return staticHandler(src, assets.Stylesheet, "text/css; charset=utf-8")
}

// scriptHandler godoc
//
//	@Summary	Page script
//	@Tags		assets
//	@Produce	text/javascript
//	@Success	200	{string}	string	"script.js"
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/script.js [get]
func scriptHandler(src AssetReader) http.HandlerFunc {
	return staticHandler(src, assets.Script, "text/javascript; charset=utf-8")
}

func staticHandler(src AssetReader, name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := src.Read(name)
		if err != nil {
			var he HTTPError
			if errors.As(err, &he) {
				if he.StatusCode() == http.StatusNotFound {
					IncrementAssetMiss(name)
				}
				writeJSONError(w, he.StatusCode(), he.Error())
				return
			}
			if zlog != nil {
				zlog.Error().Err(err).Str("asset", name).Msg("read asset")
			}
			writeJSONError(w, http.StatusInternalServerError, "failed to read asset")
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeContent(w, r, a.Name, a.ModTime, bytes.NewReader(a.Data))
	}
}

// jsonRenderer is implemented by services that keep a pre-encoded model list.
type jsonRenderer interface {
	JSON() []byte
}

// listModelsHandler godoc
//
//	@Summary	List selectable chat models
//	@Tags		models
//	@Produce	json
//	@Success	200	{array}	types.ModelDescriptor
//	@Router		/models [get]
func listModelsHandler(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if jr, ok := svc.(jsonRenderer); ok {
			w.Write(jr.JSON())
			return
		}
		models := svc.ListModels()
		if models == nil {
			models = []types.ModelDescriptor{}
		}
		if err := json.NewEncoder(w).Encode(models); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
	}
}
