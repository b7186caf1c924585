package store

import "testing"

func TestHubPublishReachesOnlyMatchingTopic(t *testing.T) {
	h := newHub()

	var clients, tasks int
	h.subscribe(topic{topicClients, "u1"}, func() { clients++ })
	h.subscribe(topic{topicTasks, "u1"}, func() { tasks++ })

	h.publish(topic{topicClients, "u1"})
	h.publish(topic{topicClients, "u2"})

	if clients != 1 {
		t.Fatalf("clients subscriber called %d times, want 1", clients)
	}
	if tasks != 0 {
		t.Fatalf("tasks subscriber called %d times, want 0", tasks)
	}
}

func TestHubCancelIsIdempotentAndIsolated(t *testing.T) {
	h := newHub()
	tp := topic{topicTransactions, "u1"}

	var a, b int
	cancelA := h.subscribe(tp, func() { a++ })
	h.subscribe(tp, func() { b++ })

	cancelA()
	cancelA()

	h.publish(tp)

	if a != 0 {
		t.Fatalf("cancelled subscriber called %d times, want 0", a)
	}
	if b != 1 {
		t.Fatalf("remaining subscriber called %d times, want 1", b)
	}
}

func TestHubPublishWithNoSubscribers(t *testing.T) {
	h := newHub()
	h.publish(topic{topicCredentials, "nobody"}) // must not panic
}
