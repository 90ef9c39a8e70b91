package websocket

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:       id,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")

	hub.Register(client1)
	hub.Register(client2)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client2)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_UnregisterUnknownClient(t *testing.T) {
	hub := NewHub()
	hub.Register(newMockClient("client-1"))

	// Unregistering a client that was never registered is harmless
	hub.Unregister(newMockClient("stranger"))
	assert.Equal(t, 1, hub.ClientCount())
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")
	hub.Register(client1)
	hub.Register(client2)

	evt := TransactionCreated(map[string]interface{}{"id": "t1"})
	hub.Broadcast(evt)

	// Give goroutines time to process
	time.Sleep(10 * time.Millisecond)

	msgs1 := client1.GetMessages()
	msgs2 := client2.GetMessages()
	require.Len(t, msgs1, 1)
	require.Len(t, msgs2, 1)

	var decoded Event
	require.NoError(t, json.Unmarshal(msgs1[0], &decoded))
	assert.Equal(t, "transaction.created", decoded.Type)
	assert.Equal(t, EntityTypeTransaction, decoded.Entity)
}

func TestHub_BroadcastToClosedClient(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1")
	hub.Register(client)
	client.Close()

	// Should not panic; the send error is logged and dropped
	hub.Broadcast(DataCleared())
	time.Sleep(10 * time.Millisecond)

	assert.Len(t, client.GetMessages(), 0)
}

func TestHub_PublishDelegatesToBroadcast(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1")
	hub.Register(client)

	var publisher EventPublisher = hub
	publisher.Publish(SettingsChanged(map[string]string{"currency": "USD"}))
	time.Sleep(10 * time.Millisecond)

	msgs := client.GetMessages()
	require.Len(t, msgs, 1)

	var decoded Event
	require.NoError(t, json.Unmarshal(msgs[0], &decoded))
	assert.Equal(t, "settings.changed", decoded.Type)
}
