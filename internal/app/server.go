package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/specialistvlad/opendrivego/internal/ctxlog"
)

const shutdownTimeout = 5 * time.Second

// Handler returns the inspection API for the built road map.
func (a *App) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", a.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/roads", a.roadsHandler).Methods(http.MethodGet)
	r.HandleFunc("/roads/{id:-?[0-9]+}", a.roadHandler).Methods(http.MethodGet)
	r.HandleFunc("/roads/{id:-?[0-9]+}/connections", a.connectionsHandler).Methods(http.MethodGet)
	return r
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) roadsHandler(w http.ResponseWriter, r *http.Request) {
	if a.roads == nil {
		http.Error(w, "road map not built", http.StatusServiceUnavailable)
		return
	}
	a.writeJSON(w, a.roads)
}

func (a *App) roadHandler(w http.ResponseWriter, r *http.Request) {
	if a.roads == nil {
		http.Error(w, "road map not built", http.StatusServiceUnavailable)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid road id", http.StatusBadRequest)
		return
	}

	seg, ok := a.roads.Segment(id)
	if !ok {
		http.Error(w, fmt.Sprintf("road %d not found", id), http.StatusNotFound)
		return
	}
	a.writeJSON(w, seg)
}

// connections is the body of /roads/{id}/connections.
type connections struct {
	ID        int   `json:"id"`
	Next      []int `json:"next"`
	Previous  []int `json:"previous"`
	Reachable []int `json:"reachable"`
}

func (a *App) connectionsHandler(w http.ResponseWriter, r *http.Request) {
	if a.topology == nil {
		http.Error(w, "road map not built", http.StatusServiceUnavailable)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid road id", http.StatusBadRequest)
		return
	}

	next, err := a.topology.Next(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	// The road exists, so the remaining lookups cannot fail.
	previous, _ := a.topology.Previous(id)
	reachable, _ := a.topology.Reachable(id)

	a.writeJSON(w, connections{ID: id, Next: next, Previous: previous, Reachable: reachable})
}

func (a *App) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("Failed to encode response.", "error", err)
	}
}

// serve runs the inspection server until ctx is cancelled, then shuts it
// down gracefully.
func (a *App) serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", a.config.ListenPort)
	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Inspection server starting.", "address", fmt.Sprintf("http://localhost%s/roads", addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("inspection server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down inspection server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Inspection server shutdown failed.", "error", err)
		return err
	}
	logger.Debug("Inspection server shut down gracefully.")
	return nil
}
