package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

// Preview port range tried when no port is given.
const (
	PreviewPortRangeStart = 9000
	PreviewPortRangeEnd   = 9100
)

// PreviewServer serves a bundle written by WriteBundle.
type PreviewServer struct {
	bundlePath  string
	port        int
	breakpoints model.Breakpoints
	server      *http.Server
}

// NewPreviewServer creates a server for bundlePath on port.
func NewPreviewServer(bundlePath string, port int, bps model.Breakpoints) *PreviewServer {
	return &PreviewServer{
		bundlePath:  bundlePath,
		port:        port,
		breakpoints: bps,
	}
}

// Handler returns the server's HTTP handler.
func (p *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", noCacheMiddleware(http.FileServer(http.Dir(p.bundlePath))))
	mux.HandleFunc("/__preview__/status", p.statusHandler)
	return mux
}

// Serve blocks until ctx is cancelled or the listener fails.
func (p *PreviewServer) Serve(ctx context.Context) error {
	if _, err := os.Stat(filepath.Join(p.bundlePath, BundleIndex)); err != nil {
		return fmt.Errorf("no %s found in bundle %s: %w", BundleIndex, p.bundlePath, err)
	}

	p.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", p.port),
		Handler:           p.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := p.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return p.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Port returns the port the server listens on.
func (p *PreviewServer) Port() int {
	return p.port
}

// URL returns the full URL of the preview server.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

type previewStatus struct {
	Status      string   `json:"status"`
	Port        int      `json:"port"`
	BundlePath  string   `json:"bundle_path"`
	HasIndex    bool     `json:"has_index"`
	Breakpoints []string `json:"breakpoints"`
}

func (p *PreviewServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	_, err := os.Stat(filepath.Join(p.bundlePath, BundleIndex))
	json.NewEncoder(w).Encode(previewStatus{
		Status:      "running",
		Port:        p.port,
		BundlePath:  p.bundlePath,
		HasIndex:    err == nil,
		Breakpoints: p.breakpoints.Names(),
	})
}

// noCacheMiddleware makes the browser refetch the stylesheet after every
// re-export.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort finds an available port in the given range.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}

// OpenInBrowser opens url with the platform's default handler.
func OpenInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
