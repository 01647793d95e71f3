package tcp

import (
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	sock, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	server := NewServer(sock, func(conn net.Conn) {
		_, _ = conn.Write([]byte("hi"))
		_ = conn.Close()
	})

	done := make(chan error)
	go func() {
		done <- server.Start()
	}()

	conn, err := net.Dial("tcp", sock.Addr().String())
	require.NoError(t, err)

	buff := make([]byte, 2)
	_, err = io.ReadFull(conn, buff)
	require.NoError(t, err)
	require.Equal(t, "hi", string(buff))
	require.NoError(t, conn.Close())

	require.NoError(t, server.Stop())
	require.Equal(t, ErrShutdown, <-done)
}

func TestClient(t *testing.T) {
	left, right := net.Pipe()
	client := NewClient(left, make([]byte, 16))

	go func() {
		_, _ = right.Write([]byte("hello, world"))
	}()

	data, err := client.Read()
	require.NoError(t, err)
	require.Equal(t, "hello, world", string(data))

	client.Unread(data[5:])
	data, err = client.Read()
	require.NoError(t, err)
	require.Equal(t, ", world", string(data))

	go func() {
		buff := make([]byte, 2)
		_, _ = io.ReadFull(right, buff)
	}()
	require.NoError(t, client.Write([]byte("ok")))

	require.NoError(t, client.Close())
	_ = right.Close()
}
