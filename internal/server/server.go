// Package server exposes the portfolio content as a read-only JSON API.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"folio/internal/content"
	"folio/internal/gallery"
)

// ItemResponse is a gallery item with its resolved image sequence.
type ItemResponse struct {
	Kind   string       `json:"kind"`
	Index  int          `json:"index"`
	Item   gallery.Item `json:"item"`
	Images []string     `json:"images"`
	Count  int          `json:"count"`
}

// Server serves one portfolio over HTTP.
type Server struct {
	portfolio *content.Portfolio
	engine    *gin.Engine
	http      *http.Server
}

// New builds the router. Use gin.SetMode beforehand to pick debug/release.
func New(p *content.Portfolio, addr string) *Server {
	s := &Server{portfolio: p}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.GET("/healthz", s.handleHealth)
	api := r.Group("/api")
	api.GET("/portfolio", s.handlePortfolio)
	api.GET("/:collection", s.handleCollection)
	api.GET("/:collection/:index", s.handleItem)

	s.engine = r
	s.http = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("folio: serving content on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolio)
}

func (s *Server) collection(c *gin.Context) (gallery.Kind, []gallery.Item, bool) {
	kind := gallery.ParseKind(c.Param("collection"))
	if kind == gallery.KindNone {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown collection " + strconv.Quote(c.Param("collection"))})
		return kind, nil, false
	}
	return kind, s.portfolio.Collection(kind), true
}

func (s *Server) handleCollection(c *gin.Context) {
	kind, items, ok := s.collection(c)
	if !ok {
		return
	}
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = itemResponse(kind, i, it)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleItem(c *gin.Context) {
	kind, items, ok := s.collection(c)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 || idx >= len(items) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no item " + strconv.Quote(c.Param("index"))})
		return
	}
	c.JSON(http.StatusOK, itemResponse(kind, idx, items[idx]))
}

func itemResponse(kind gallery.Kind, idx int, it gallery.Item) ItemResponse {
	images := gallery.Resolve(it)
	if images == nil {
		images = []string{}
	}
	return ItemResponse{
		Kind:   kind.String(),
		Index:  idx,
		Item:   it,
		Images: images,
		Count:  len(images),
	}
}
