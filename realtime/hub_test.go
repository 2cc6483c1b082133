package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTopic(t *testing.T) {
	assert.Equal(t, "orders:table:3", OrderTopic(3))
}

func TestMatchTopic(t *testing.T) {
	subs := map[string]bool{TopicOrders: true}

	assert.Equal(t, TopicOrders, matchTopic(subs, []string{TopicOrders}))
	assert.Equal(t, "", matchTopic(subs, []string{TopicTables}))

	// Broadcast ke dua topik: yang cocok pertama yang dipakai
	assert.Equal(t, TopicOrders,
		matchTopic(subs, []string{TopicOrders, OrderTopic(3)}))

	// Langganan "*" cocok dengan topik apa pun
	all := map[string]bool{TopicAll: true}
	assert.Equal(t, TopicSettings, matchTopic(all, []string{TopicSettings}))
}

func TestBroadcastWithoutClientsIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Broadcast(EventUpdated, map[string]int{"id": 1}, TopicOrders)
	})
	assert.Equal(t, 0, ClientCount())
}

func TestBroadcastUnmarshalableDataIsNoop(t *testing.T) {
	// Payload yang tidak bisa di-JSON-kan dibuang sebelum menyentuh client
	assert.NotPanics(t, func() {
		Broadcast(EventUpdated, make(chan int), TopicOrders, OrderTopic(1))
	})
}
