package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/andinovuelo/flightops/api"
	"github.com/andinovuelo/flightops/config"
	"github.com/andinovuelo/flightops/internal/service/flightops"
	"github.com/andinovuelo/flightops/internal/service/reports"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, opsSvc flightops.FlightOpsUseCase, reportSvc reports.ReportUseCase, audit api.AuditSource) error {
	router := gin.Default()

	api.NewFlightHandler(opsSvc).Register(router.Group("/flights"))
	api.NewReportHandler(reportSvc).Register(router.Group("/reports"))
	api.NewBoardingHandler(opsSvc).Register(router.Group("/boardings"))
	api.NewAuditHandler(audit).Register(router.Group("/audit"))

	if cfg.HTTP.DocsDir != "" {
		fs := http.FileServer(http.Dir(cfg.HTTP.DocsDir))
		router.GET("/openapi/*filepath", gin.WrapH(http.StripPrefix("/openapi/", fs)))
		router.GET("/docs", func(c *gin.Context) {
			renderDocs(c.Writer, "/openapi/flightops.openapi.json")
		})
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func renderDocs(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
