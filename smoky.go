package smoky

import (
	"net"
	"strconv"
	"sync/atomic"

	"github.com/smoky-web/smoky/config"
	httpserver "github.com/smoky-web/smoky/internal/server/http"
	"github.com/smoky-web/smoky/internal/tcp"
)

// App owns the listening socket and the per-connection wiring. Every
// accepted connection gets its own goroutine, serves a single request
// and dies; no state is shared between them.
type App struct {
	cfg   *config.Config
	hooks hooks
	errCh chan error
}

// New returns a new App instance bound to the default configuration.
func New() *App {
	return &App{
		cfg:   config.Default(),
		errCh: make(chan error),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	if cfg != nil {
		a.cfg = cfg
	}

	return a
}

// NotifyOnStart calls the callback at the moment when the listener is up.
// However, it isn't strongly guaranteed that it'll be able to accept new
// connections immediately.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment when the server is down
// and isn't able to accept any new connections.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the server and blocks until it is stopped or the listener
// fails. It runs until externally terminated: there is no graceful
// shutdown protocol beyond Stop and GracefulStop.
func (a *App) Serve() error {
	addr := net.JoinHostPort(a.cfg.NET.Host, strconv.Itoa(int(a.cfg.NET.Port)))
	sock, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	return a.run(tcp.NewServer(sock, a.newTCPCallback()))
}

func (a *App) run(server *tcp.Server) error {
	var failSilently atomic.Bool

	go func() {
		err := server.Start()

		if failSilently.Swap(true) {
			return
		}

		a.errCh <- err
	}()

	callIfNotNil(a.hooks.OnStart)
	err := <-a.errCh
	failSilently.Swap(true)

	if err == tcp.ErrGracefulShutdown {
		// stop listening to new clients, process till the end all the old ones
		_ = server.GracefulShutdown()
	}

	_ = server.Stop()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving old ones.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the
// server may still be working.
func (a *App) GracefulStop() {
	a.errCh <- tcp.ErrGracefulShutdown
}

// Stop stops the whole application immediately.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the
// server may still be working.
func (a *App) Stop() {
	a.errCh <- tcp.ErrShutdown
}

func (a *App) newTCPCallback() tcp.OnConn {
	server := httpserver.NewServer(a.cfg)

	return func(conn net.Conn) {
		client := tcp.NewClient(conn, make([]byte, a.cfg.NET.ReadBufferSize))
		server.Run(client)
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
