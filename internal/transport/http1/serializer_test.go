package http1

import (
	"testing"

	"github.com/smoky-web/smoky/http/status"
	"github.com/smoky-web/smoky/internal/tcp/dummy"
	"github.com/stretchr/testify/require"
)

func TestWriteSuccess(t *testing.T) {
	client := dummy.NewStaticClient()
	serializer := NewSerializer(make([]byte, 128))

	require.NoError(t, serializer.WriteSuccess([]byte(`{"hello":"world"}`), client))

	want := "HTTP/1.1 200 OK\r\n" +
		"content-type: text/plain\r\n" +
		"content-length: 17\r\n" +
		"\r\n" +
		`{"hello":"world"}`
	require.Equal(t, want, string(client.Written()))
}

func TestWriteError(t *testing.T) {
	for _, tc := range []struct {
		code status.Code
		want string
	}{
		{status.BadRequest, "HTTP/1.1 400 Bad Request\r\n"},
		{status.EntityTooLarge, "HTTP/1.1 413 Entity Too Large\r\n"},
		{status.InternalServerError, "HTTP/1.1 500 Internal Server Error\r\n"},
	} {
		client := dummy.NewStaticClient()
		serializer := NewSerializer(make([]byte, 128))

		require.NoError(t, serializer.WriteError(tc.code, client))

		want := tc.want +
			"Content-Type: text/plain\r\n" +
			"Content-Length: 0\r\n" +
			"Connection: close\r\n" +
			"\r\n"
		require.Equal(t, want, string(client.Written()))
	}
}

func TestSerializerReuse(t *testing.T) {
	client := dummy.NewStaticClient()
	serializer := NewSerializer(make([]byte, 128))

	require.NoError(t, serializer.WriteSuccess([]byte("first"), client))
	first := len(client.Written())
	require.NoError(t, serializer.WriteError(status.BadRequest, client))

	second := string(client.Written()[first:])
	require.Equal(t,
		"HTTP/1.1 400 Bad Request\r\nContent-Type: text/plain\r\nContent-Length: 0\r\nConnection: close\r\n\r\n",
		second,
	)
}
