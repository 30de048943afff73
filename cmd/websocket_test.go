package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialTestConn spins up a throwaway upgrade endpoint and returns both ends
// of a live websocket connection.
func dialTestConn(t *testing.T) (serverConn, clientConn *websocket.Conn, cleanup func()) {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	conns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		conns <- conn
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	serverConn = <-conns
	return serverConn, clientConn, func() {
		clientConn.Close()
		serverConn.Close()
		srv.Close()
	}
}

func TestNotificationHubDeliversEvent(t *testing.T) {
	hub := NewNotificationHub()
	go hub.Run()

	serverConn, clientConn, cleanup := dialTestConn(t)
	defer cleanup()

	hub.register <- hubClient{ID: 7, Socket: serverConn}
	hub.Notify(7, "hire_request", map[string]int{"hire_id": 3})

	clientConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got hubEvent
	if err := clientConn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.UserID != 7 || got.Event != "hire_request" {
		t.Errorf("event = %+v; want user 7, hire_request", got)
	}
}

func TestNotificationHubSurvivesFailedWrite(t *testing.T) {
	hub := NewNotificationHub()
	go hub.Run()

	serverConn, clientConn, cleanup := dialTestConn(t)
	defer cleanup()

	hub.register <- hubClient{ID: 7, Socket: serverConn}

	// Kill both ends so the next write to this client fails inside Run.
	clientConn.Close()
	serverConn.Close()
	hub.Notify(7, "hire_request", map[string]int{"hire_id": 4})
	time.Sleep(100 * time.Millisecond)

	// The hub must still accept registrations after dropping the dead client.
	serverConn2, _, cleanup2 := dialTestConn(t)
	defer cleanup2()
	select {
	case hub.register <- hubClient{ID: 8, Socket: serverConn2}:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped accepting registrations after a failed client write")
	}

	// The explicit unregister path must keep draining too.
	select {
	case hub.unregister <- 8:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped accepting unregistrations after a failed client write")
	}
}
