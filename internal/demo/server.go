// Package demo serves an in-memory storefront so the client can run without
// a real backend.
package demo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/five82/satchel/internal/storefront"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Server holds the demo catalog.
type Server struct {
	products []storefront.RawProduct
	filters  []storefront.FilterGroup
	log      *logrus.Logger
}

// NewServer builds a demo server over products. A nil products slice uses
// the seeded catalog.
func NewServer(products []storefront.RawProduct, logger *logrus.Logger) *Server {
	if products == nil {
		products = SeedProducts()
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{products: products, filters: SeedFilters(), log: logger}
}

// Router returns the gin engine serving the storefront API on productsPath.
func (s *Server) Router(productsPath string) *gin.Engine {
	if strings.TrimSpace(productsPath) == "" {
		productsPath = storefront.DefaultProductsPath
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "products": len(s.products)})
	})
	router.GET(productsPath, s.listProducts)
	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"request_id": c.GetHeader("X-Request-ID"),
		}).Info("request completed")
	}
}

func (s *Server) listProducts(c *gin.Context) {
	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	productType := strings.ToLower(strings.TrimSpace(c.Query("product_type")))
	matched := make([]storefront.RawProduct, 0, len(s.products))
	for _, p := range s.products {
		if productType != "" && !strings.EqualFold(p.SourceType, productType) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	start := min(offset, total)
	end := min(start+limit, total)

	c.JSON(http.StatusOK, storefront.ProductListResponse{
		Products:   matched[start:end],
		Pagination: storefront.Pagination{Offset: offset, Limit: limit, Total: total},
		Filters:    s.filters,
	})
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

// Serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *logrus.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("demo storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("demo storefront stopped")
	return nil
}
