package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(env string, allowedOrigins []string, summaryHandler SummaryHandler, reportHandler ReportHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presence-insights"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/summary", summaryHandler.GetSummaries)
			r.Post("/summary/preview", summaryHandler.PreviewSummaries)
			r.Get("/status", summaryHandler.GetCurrentStatus)
		})

		r.Get("/attendants", summaryHandler.ListAttendants)

		r.Route("/reports", func(r chi.Router) {
			r.Post("/shifts/preview", reportHandler.PreviewShiftReport)
			r.Route("/attendants/{userID}", func(r chi.Router) {
				r.Get("/shifts", reportHandler.GetShiftReport)
				r.Get("/daily", reportHandler.GetDailyReport)
			})
		})
	})

	return r
}
