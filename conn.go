package httpd

import (
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tiwaryash/httpd/internal/stream"
	"github.com/tiwaryash/httpd/specs"
)

// handleConn performs exactly one parse, route, respond cycle and closes the
// connection regardless of outcome. The active-connection counter is
// incremented once on entry and decremented once on every exit path,
// including panics.
func (srv *Server) handleConn(conn net.Conn, workerID int) {
	srv.metrics.ConnOpened()
	start := time.Now()

	logger := srv.Logger.With().
		Str("conn_id", uuid.NewString()).
		Str("remote", conn.RemoteAddr().String()).
		Int("worker", workerID).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			srv.metrics.ErrorSeen()
			logger.Error().Any("panic", r).Msg("panic while handling connection")
			srv.writeError(conn, specs.NewError(specs.KindInternal, "internal server error"), logger)
		}
		conn.Close()
		srv.metrics.ConnClosed()
	}()

	tuneConn(conn)

	reader := stream.DefaultBufioReaderPool.Get(conn)
	req, err := ReadRequest(reader)
	stream.DefaultBufioReaderPool.Put(reader)
	if err != nil {
		srv.metrics.ErrorSeen()
		logger.Warn().Err(err).Msg("failed to parse request")
		srv.writeError(conn, err, logger)
		return
	}

	// The attempt itself is measured: the request counter advances even if
	// the handler fails afterwards.
	srv.metrics.RequestSeen()

	payload, err := srv.router.Route(req)
	if err != nil {
		srv.metrics.ErrorSeen()
		srv.metrics.ObserveDuration(time.Since(start))
		logger.Warn().
			Str("method", string(req.Method)).
			Str("path", req.Path).
			Err(err).
			Msg("request failed")
		srv.writeError(conn, err, logger)
		return
	}

	if _, err = conn.Write(payload); err != nil {
		srv.metrics.ErrorSeen()
		srv.metrics.ObserveDuration(time.Since(start))
		logger.Warn().Err(err).Msg("failed to write response")
		srv.writeError(conn, specs.WrapError(specs.KindIO, err), logger)
		return
	}

	duration := time.Since(start)
	srv.metrics.ObserveDuration(duration)
	logger.Debug().
		Str("method", string(req.Method)).
		Str("path", req.Path).
		Int("bytes", len(payload)).
		Dur("duration", duration).
		Msg("request handled")
}

// writeError sends a plain-text error response over the same connection,
// best effort: a secondary write failure is logged and otherwise swallowed.
func (srv *Server) writeError(conn net.Conn, err error, logger zerolog.Logger) {
	resp := NewResponse(specs.ErrorStatus(err)).Text(err.Error())

	conn.SetWriteDeadline(time.Now().Add(time.Second))
	if _, werr := conn.Write(resp.Build()); werr != nil {
		logger.Debug().Err(werr).Msg("failed to send error response")
	}
}

// tuneConn applies best-effort socket options on accepted connections.
// Failures to set an option are non-fatal and ignored.
func tuneConn(conn net.Conn) {
	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.SetNoDelay(true)
		tcp.SetKeepAlive(false)
	}
}
