package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/karski/cashboard/internal/model"
)

// mockStreamServer creates a test WebSocket server.
func mockStreamServer(t *testing.T, handler func(*websocket.Conn)) *httptest.Server {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Logf("upgrade error: %v", err)
			return
		}
		defer conn.Close()
		handler(conn)
	}))
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestStreamDeliversSnapshots(t *testing.T) {
	snapshotMsg := []byte(`{
		"blinds": 0.5,
		"game_start_time": "2024-11-02T18:30:00Z",
		"money_on_table": 600,
		"number_of_players": 4,
		"avg_stack": 150
	}`)

	server := mockStreamServer(t, func(conn *websocket.Conn) {
		for i := 0; i < 3; i++ {
			if err := conn.WriteMessage(websocket.TextMessage, snapshotMsg); err != nil {
				return
			}
		}
		// Keep the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer server.Close()

	var received atomic.Int32
	var lastMoney atomic.Int64
	handler := SnapshotHandlerFunc(func(s *model.GameSnapshot) {
		received.Add(1)
		lastMoney.Store(int64(s.MoneyOnTable))
	})

	s := NewStream(StreamConfig{URL: wsURL(server)}, nil, handler, nil, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for received.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(stopCtx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if got := received.Load(); got != 3 {
		t.Errorf("received %d snapshots, want 3", got)
	}
	if got := lastMoney.Load(); got != 60000 {
		t.Errorf("last snapshot money = %d cents, want 60000", got)
	}
}

func TestStreamDropsMalformedMessages(t *testing.T) {
	server := mockStreamServer(t, func(conn *websocket.Conn) {
		// Missing start time: must be dropped, not partially applied.
		conn.WriteMessage(websocket.TextMessage, []byte(`{"blinds": 1}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{
			"blinds": 1,
			"game_start_time": "2024-11-02T18:30:00Z",
			"money_on_table": 100,
			"number_of_players": 2,
			"avg_stack": 50
		}`))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer server.Close()

	var received atomic.Int32
	var streamErrs atomic.Int32
	handler := SnapshotHandlerFunc(func(s *model.GameSnapshot) {
		received.Add(1)
	})

	s := NewStream(StreamConfig{URL: wsURL(server)}, nil, handler,
		func(error) { streamErrs.Add(1) }, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for received.Load() < 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(stopCtx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if got := received.Load(); got != 1 {
		t.Errorf("received %d snapshots, want 1 (malformed dropped)", got)
	}
	if streamErrs.Load() == 0 {
		t.Error("error handler never saw the malformed message")
	}
}

func TestStreamReconnects(t *testing.T) {
	var connections atomic.Int32
	server := mockStreamServer(t, func(conn *websocket.Conn) {
		n := connections.Add(1)
		if n == 1 {
			return // drop the first connection immediately
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	defer server.Close()

	cfg := StreamConfig{
		URL:                wsURL(server),
		ReconnectBaseDelay: 10 * time.Millisecond,
		ReconnectMaxDelay:  20 * time.Millisecond,
	}
	s := NewStream(cfg, nil, nil, nil, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for connections.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(stopCtx); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if got := connections.Load(); got < 2 {
		t.Errorf("connections = %d, want >= 2 (reconnect)", got)
	}
}
