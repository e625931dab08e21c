package httpd

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ErrServerClosed is returned by Serve after Shutdown.
var ErrServerClosed = errors.New("httpd: server closed")

// Server accepts TCP connections and serves exactly one HTTP/1.1 exchange
// per connection on a bounded worker pool.
type Server struct {
	// Addr is the listen address, host:port.
	Addr string

	// Root is the file-serving root directory.
	Root string

	// Workers bounds the number of concurrently handled connections.
	// Zero means DefaultWorkerCount.
	Workers int

	// DrainTimeout bounds the shutdown wait for in-flight connections.
	// Zero means DefaultDrainTimeout.
	DrainTimeout time.Duration

	Logger zerolog.Logger

	router  *Router
	metrics *Metrics

	mutex          sync.Mutex
	listener       net.Listener
	isShuttingdown atomic.Bool
	shuttingDown   chan struct{}
	once           sync.Once
}

// NewServer builds a server from a validated config.
func NewServer(cfg Config, logger zerolog.Logger) *Server {
	return &Server{
		Addr:    cfg.Addr(),
		Root:    cfg.Directory,
		Workers: cfg.Workers,
		Logger:  logger,
	}
}

func (srv *Server) init() {
	srv.shuttingDown = make(chan struct{})
	if srv.metrics == nil {
		srv.metrics = NewMetrics()
	}
	srv.router = NewRouter(srv.Root, srv.metrics, srv.Logger)
}

// Metrics exposes the shared counter record, for tests and embedding.
func (srv *Server) Metrics() *Metrics {
	srv.once.Do(srv.init)
	return srv.metrics
}

func (srv *Server) IsShutdown() bool {
	return srv.isShuttingdown.Load()
}

// ListenAndServe binds a listener on Addr and calls Serve.
func (srv *Server) ListenAndServe() error {
	if srv.IsShutdown() {
		return ErrServerClosed
	}
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	return srv.Serve(listener)
}

// Serve accepts connections on the listener and feeds them to a fixed pool
// of worker goroutines, each running one connection handler at a time.
// After Shutdown it stops accepting, waits up to DrainTimeout for the
// active-connection count to reach zero and returns ErrServerClosed.
func (srv *Server) Serve(listener net.Listener) error {
	if listener == nil {
		panic("httpd: nil listener")
	}
	if srv.IsShutdown() {
		return ErrServerClosed
	}
	srv.once.Do(srv.init)

	srv.mutex.Lock()
	srv.listener = listener
	srv.mutex.Unlock()

	workers := srv.Workers
	if workers <= 0 {
		workers = DefaultWorkerCount
	}

	conns := make(chan net.Conn)
	var workerTrack sync.WaitGroup
	for i := 0; i < workers; i++ {
		workerTrack.Add(1)
		go func(id int) {
			defer workerTrack.Done()
			for conn := range conns {
				srv.handleConn(conn, id)
			}
		}(i)
	}

	var attemptDelay time.Duration
	var err error
	for {
		if srv.IsShutdown() {
			err = ErrServerClosed
			break
		}

		var conn net.Conn
		conn, err = listener.Accept()
		if err != nil {
			if srv.IsShutdown() || errors.Is(err, net.ErrClosed) {
				err = ErrServerClosed
				break
			}
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				if attemptDelay == 0 {
					attemptDelay = 5 * time.Millisecond
				} else if maxDelay := 1 * time.Second; attemptDelay >= maxDelay {
					attemptDelay = maxDelay
				} else {
					attemptDelay *= 2
				}
				time.Sleep(attemptDelay)
				continue
			}
			break
		}
		attemptDelay = 0

		select {
		case conns <- conn:
		case <-srv.shuttingDown:
			conn.Close()
		}
	}

	close(conns)
	if errors.Is(err, ErrServerClosed) {
		if stranded := srv.drain(); stranded > 0 {
			// The stranded workers keep running; Serve returns regardless.
			return err
		}
	}
	workerTrack.Wait()
	return err
}

// drain polls the active-connection counter until it reaches zero or the
// drain timeout expires. In-flight requests are never cancelled, only
// awaited; it returns how many connections were abandoned.
func (srv *Server) drain() int64 {
	timeout := srv.DrainTimeout
	if timeout <= 0 {
		timeout = DefaultDrainTimeout
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if srv.metrics.ActiveConnections() == 0 {
			return 0
		}
		time.Sleep(drainPollInterval)
	}

	stranded := srv.metrics.ActiveConnections()
	if stranded > 0 {
		srv.Logger.Warn().
			Int64("stranded_connections", stranded).
			Dur("timeout", timeout).
			Msg("drain timeout expired, abandoning connections")
	}
	return stranded
}

// Shutdown stops the server from accepting new connections. It is safe to
// call multiple times and returns immediately; Serve performs the drain.
func (srv *Server) Shutdown() {
	srv.once.Do(srv.init)
	if !srv.isShuttingdown.CompareAndSwap(false, true) {
		return
	}
	close(srv.shuttingDown)

	srv.mutex.Lock()
	defer srv.mutex.Unlock()
	if srv.listener != nil {
		srv.listener.Close()
	}
}
