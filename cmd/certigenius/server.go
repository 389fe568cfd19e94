package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	certigenius "github.com/naina18075-cpu/certigenius"
)

// shutdownTimeout bounds graceful shutdown after the context is canceled.
const shutdownTimeout = 10 * time.Second

// portalServer exposes the participant portal over HTTP.
type portalServer struct {
	portal *certigenius.Portal
	logger *zap.Logger
}

// recipientResponse is the JSON shape of a search hit.
type recipientResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// errorResponse is the JSON shape of an API error.
type errorResponse struct {
	Error string `json:"error"`
}

// servePortal runs the portal server until the context is canceled.
func servePortal(ctx context.Context, portal *certigenius.Portal, addr string, verbose bool, logger *zap.Logger) error {
	s := &portalServer{portal: portal, logger: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	if verbose {
		e.Use(middleware.Logger())
	}

	e.GET("/api/search", s.handleSearch)
	e.GET("/api/certificate/:query", s.handleCertificate)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	logger.Info("portal listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

// handleSearch finds a recipient by id or name.
func (s *portalServer) handleSearch(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing query parameter q"})
	}

	r, ok := s.portal.Search(query)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "no certificate found for this name or ID"})
	}

	return c.JSON(http.StatusOK, recipientResponse{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Status: r.Status,
	})
}

// handleCertificate renders and returns a recipient's certificate PDF.
func (s *portalServer) handleCertificate(c echo.Context) error {
	query := c.Param("query")

	artifact, err := s.portal.Certificate(c.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, certigenius.ErrRecipientNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "no certificate found for this name or ID"})
		case errors.Is(err, certigenius.ErrExportInFlight):
			return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "an export is already in progress, try again"})
		default:
			s.logger.Error("certificate export failed", zap.String("query", query), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to generate certificate"})
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	return c.Blob(http.StatusOK, "application/pdf", artifact.Data)
}
