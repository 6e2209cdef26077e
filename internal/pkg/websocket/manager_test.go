package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealerdrive/dealerdrive/internal/pkg/constants"
	"github.com/dealerdrive/dealerdrive/internal/pkg/models"
)

// dialTestConn upgrades a server-side connection and dials it from a client,
// returning both ends.
func dialTestConn(t *testing.T, m *Manager) (server, client *websocket.Conn) {
	upgraded := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := m.upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		upgraded <- ws
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	server = <-upgraded
	t.Cleanup(func() { server.Close() })
	return server, client
}

func TestSendMessage_ConcurrentWriters(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test-secret"})
	server, client := dialTestConn(t, m)

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				assert.NoError(t, m.SendMessage(server, constants.EventDriveStats, map[string]int{"writer": n}))
			}
		}(i)
	}

	for received := 0; received < writers*perWriter; received++ {
		var msg models.WSMessage
		require.NoError(t, client.ReadJSON(&msg))
		assert.Equal(t, constants.EventDriveStats, msg.Event)
	}
	wg.Wait()
}

func TestSendMessage_NilConnTolerated(t *testing.T) {
	m := NewManager(models.JWTConfig{Secret: "test-secret"})
	assert.NoError(t, m.SendMessage(nil, constants.EventPong, nil))
}
