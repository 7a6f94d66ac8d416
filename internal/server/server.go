// Package server serves the portfolio page over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/Zachkp/folio/internal/daterange"
	"github.com/Zachkp/folio/internal/experience"
	"github.com/Zachkp/folio/internal/render"
	"github.com/Zachkp/folio/internal/site"
	"github.com/Zachkp/folio/internal/view"
)

// Options configure the HTTP surface.
type Options struct {
	Site       *site.Site
	Formatter  *daterange.Formatter
	Calculator *experience.Calculator
	Lang       string
	ImagesDir  string
	Salt       string
	Logger     *log.Logger
}

// New builds the gin engine with all routes registered.
func New(opts Options) (*gin.Engine, error) {
	if opts.Site == nil {
		return nil, errors.New("site data is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}
	if opts.Salt == "" {
		salt, err := NewSalt()
		if err != nil {
			return nil, err
		}
		opts.Salt = salt
	}

	tmpl, err := render.NewHTML()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(opts.Logger, opts.Salt))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS(render.DefaultStaticPrefix, http.FS(render.Static()))
	if opts.ImagesDir != "" {
		r.Static("/images", opts.ImagesDir)
	}

	// The page is rebuilt per request so skill durations follow the clock.
	page := func() *view.Page {
		return view.Build(opts.Site, opts.Formatter, opts.Calculator)
	}

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, render.IndexTemplate, render.NewDocument(page(), opts.Lang))
	})

	r.GET("/api/site", func(c *gin.Context) {
		c.JSON(http.StatusOK, page())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.WithField("listen_addr", addr).Info("starting http server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return errors.Wrap(err, "cannot start http server")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "could not gracefully shut down http server")
	}
	logger.Info("http server stopped")
	return nil
}
