package tcp

import (
	"errors"
	"net"
	"sync"
)

var (
	ErrShutdown         = errors.New("shutdown")
	ErrGracefulShutdown = errors.New("graceful shutdown")
)

type OnConn func(net.Conn)

type Server struct {
	sock     net.Listener
	onConn   OnConn
	conns    map[net.Conn]struct{}
	mu       sync.Mutex
	shutdown bool
}

func NewServer(sock net.Listener, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  map[net.Conn]struct{}{},
	}
}

// Start blocks in the accept loop, spawning an independent goroutine per
// accepted connection. It returns ErrShutdown after Stop, ErrGracefulShutdown
// after GracefulShutdown, or whatever error the listener failed with.
func (s *Server) Start() error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			wg.Wait()

			s.mu.Lock()
			down := s.shutdown
			s.mu.Unlock()
			if down {
				return ErrShutdown
			}

			return err
		}

		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()
		wg.Add(1)
		go s.connHandler(wg, conn)
	}
}

func (s *Server) stopListener() error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()

	return s.sock.Close()
}

// Stop shuts the listener and ALL the connections down.
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}

	return nil
}

// GracefulShutdown stops the listener, but leaves all the connections free
// to end their lives peacefully.
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn) {
	s.onConn(conn)
	wg.Done()

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}
