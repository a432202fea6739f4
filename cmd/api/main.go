package main

import (
	"fmt"
	"net/http"

	"github.com/cxops-br/presence-insights-go/internal/config"
	"github.com/cxops-br/presence-insights-go/internal/domain/shift"
	appHTTP "github.com/cxops-br/presence-insights-go/internal/handler/http"
	"github.com/cxops-br/presence-insights-go/internal/pkg/database"
	"github.com/cxops-br/presence-insights-go/internal/repository/postgresql"
	"github.com/cxops-br/presence-insights-go/internal/service/dailyreport"
	"github.com/cxops-br/presence-insights-go/internal/service/shiftreport"
	"github.com/cxops-br/presence-insights-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	eventRepo := postgresql.NewEventRepository(db)

	shiftTable := shift.DefaultTable()
	summaryService := summary.NewSummaryService(eventRepo)
	shiftReportService := shiftreport.NewShiftReportService(eventRepo, shiftTable)
	dailyReportService := dailyreport.NewDailyReportService(eventRepo)

	summaryHandler := appHTTP.NewSummaryHandler(summaryService)
	reportHandler := appHTTP.NewReportHandler(shiftReportService, dailyReportService)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.CORS.AllowedOrigins,
		summaryHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
