package httpd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tiwaryash/httpd/internal/encoding"
	"github.com/tiwaryash/httpd/specs"
)

const (
	echoPrefix  = "/echo/"
	filesPrefix = "/files/"

	// Bodies at or below this size skip content negotiation entirely,
	// unless the path is an echo route.
	compressionThreshold = 100
)

// Router maps a parsed request to response bytes. It owns the file-serving
// root and reads the shared metrics for the introspection routes.
type Router struct {
	root    string
	metrics *Metrics
	logger  zerolog.Logger
}

func NewRouter(root string, metrics *Metrics, logger zerolog.Logger) *Router {
	return &Router{
		root:    root,
		metrics: metrics,
		logger:  logger,
	}
}

// Route dispatches the request over the fixed rule list, first match wins,
// and returns the finalized wire bytes of the response.
func (rt *Router) Route(req *Request) ([]byte, error) {
	rt.logger.Info().
		Str("method", string(req.Method)).
		Str("path", req.Path).
		Int("body_bytes", len(req.Body)).
		Msg("dispatching request")

	// Negotiate once, before dispatch. Small non-echo payloads skip the
	// negotiation overhead and are served as-is.
	enc := encoding.Identity
	if len(req.Body) > compressionThreshold || strings.HasPrefix(req.Path, echoPrefix) {
		enc = encoding.Select(req.AcceptedEncodings())
	}

	var resp *Response
	var err error
	switch {
	case req.Method == specs.HttpMethodGet && (req.Path == "/" || req.Path == "/index.html"):
		resp = rt.handleIndex()
	case req.Method == specs.HttpMethodGet && req.Path == "/health":
		resp, err = rt.handleHealth()
	case req.Method == specs.HttpMethodGet && req.Path == "/metrics":
		resp = rt.handleMetrics()
	case req.Method == specs.HttpMethodGet && strings.HasPrefix(req.Path, echoPrefix):
		resp, err = rt.handleEcho(req, enc)
	case req.Method == specs.HttpMethodGet && req.Path == "/user-agent":
		resp = rt.handleUserAgent(req)
	case req.Method == specs.HttpMethodGet && strings.HasPrefix(req.Path, filesPrefix):
		resp, err = rt.handleGetFile(req, enc)
	case req.Method == specs.HttpMethodPost && strings.HasPrefix(req.Path, filesPrefix):
		resp, err = rt.handlePostFile(req)
	case req.Method == specs.HttpMethodDelete && strings.HasPrefix(req.Path, filesPrefix):
		resp, err = rt.handleDeleteFile(req)
	case req.Method == specs.HttpMethodGet && req.Path == "/headers":
		resp, err = rt.handleHeaders(req, enc)
	case req.Method == specs.HttpMethodGet && req.Path == "/api/info":
		resp, err = rt.handleApiInfo()
	default:
		resp = NotFound()
	}
	if err != nil {
		return nil, err
	}

	return resp.Build(), nil
}

func (rt *Router) handleIndex() *Response {
	return Ok().HTML(indexPage)
}

func (rt *Router) handleHealth() (*Response, error) {
	snap := rt.metrics.Snapshot()
	return Ok().JSON(healthReport{
		Status:            "healthy",
		UptimeSeconds:     int64(snap.Uptime.Seconds()),
		RequestsTotal:     snap.Requests,
		ErrorsTotal:       snap.Errors,
		ActiveConnections: snap.ActiveConnections,
		AvgResponseTimeMs: snap.AvgResponseTimeMillis(),
		ErrorRatePercent:  snap.ErrorRatePercent(),
	})
}

func (rt *Router) handleMetrics() *Response {
	return Ok().
		Header("Content-Type", specs.ContentTypePlain).
		Body(rt.metrics.Exposition())
}

func (rt *Router) handleEcho(req *Request, enc encoding.Encoding) (*Response, error) {
	resp := Ok().Text(strings.TrimPrefix(req.Path, echoPrefix))
	if err := resp.Compress(enc); err != nil {
		return nil, err
	}
	return resp, nil
}

func (rt *Router) handleUserAgent(req *Request) *Response {
	userAgent := req.Header("User-Agent")
	if userAgent == "" {
		userAgent = "Unknown"
	}
	return Ok().Text(userAgent)
}

func (rt *Router) handleGetFile(req *Request, enc encoding.Encoding) (*Response, error) {
	filename, err := rt.fileName(req.Path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filepath.Join(rt.root, filename))
	if err != nil {
		return nil, specs.NewError(specs.KindFileNotFound, "file not found: %s", filename)
	}

	rt.logger.Info().Str("filename", filename).Int("bytes", len(content)).Msg("serving file")

	resp := Ok().
		Header("Content-Type", guessContentType(filename)).
		Body(content)
	if err := resp.Compress(enc); err != nil {
		return nil, err
	}
	return resp, nil
}

func (rt *Router) handlePostFile(req *Request) (*Response, error) {
	filename, err := rt.fileName(req.Path)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(rt.root, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, specs.WrapError(specs.KindIO, err)
	}
	if err := os.WriteFile(path, req.Body, 0o644); err != nil {
		return nil, specs.WrapError(specs.KindIO, err)
	}

	rt.logger.Info().Str("filename", filename).Int("bytes", len(req.Body)).Msg("file uploaded")

	return Created().JSON(uploadReport{
		Message:  "File uploaded successfully",
		Filename: filename,
		Size:     len(req.Body),
	})
}

func (rt *Router) handleDeleteFile(req *Request) (*Response, error) {
	filename, err := rt.fileName(req.Path)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(filepath.Join(rt.root, filename)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, specs.NewError(specs.KindFileNotFound, "file not found: %s", filename)
		}
		return nil, specs.WrapError(specs.KindIO, err)
	}

	rt.logger.Info().Str("filename", filename).Msg("file deleted")

	return Ok().JSON(deleteReport{
		Message:  "File deleted successfully",
		Filename: filename,
	})
}

func (rt *Router) handleHeaders(req *Request, enc encoding.Encoding) (*Response, error) {
	resp, err := Ok().JSON(req.Headers)
	if err != nil {
		return nil, err
	}
	if err := resp.Compress(enc); err != nil {
		return nil, err
	}
	return resp, nil
}

func (rt *Router) handleApiInfo() (*Response, error) {
	return Ok().JSON(serverInfo)
}

// fileName extracts the target of a /files/ route and rejects anything that
// could escape the serving root, before any filesystem access happens.
func (rt *Router) fileName(path string) (string, error) {
	filename := strings.TrimPrefix(path, filesPrefix)
	if strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return "", specs.NewError(specs.KindInvalidRequest, "invalid filename")
	}
	return filename, nil
}

func guessContentType(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "html", "htm":
		return specs.ContentTypeHTML
	case "css":
		return specs.ContentTypeCSS
	case "js":
		return specs.ContentTypeJavaScript
	case "json":
		return specs.ContentTypeJson
	case "png":
		return specs.ContentTypePNG
	case "jpg", "jpeg":
		return specs.ContentTypeJPEG
	case "gif":
		return specs.ContentTypeGIF
	case "svg":
		return specs.ContentTypeSVG
	case "txt":
		return specs.ContentTypePlain
	case "pdf":
		return specs.ContentTypePDF
	case "zip":
		return specs.ContentTypeZip
	}
	return specs.ContentTypeRaw
}

type healthReport struct {
	Status            string  `json:"status"`
	UptimeSeconds     int64   `json:"uptime_seconds"`
	RequestsTotal     int64   `json:"requests_total"`
	ErrorsTotal       int64   `json:"errors_total"`
	ActiveConnections int64   `json:"active_connections"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	ErrorRatePercent  float64 `json:"error_rate_percent"`
}

type uploadReport struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

type deleteReport struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}
