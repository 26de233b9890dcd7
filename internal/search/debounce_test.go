package search

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerCommitsAfterQuietWindow(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	done := make(chan string, 1)
	d.Type("mít", func(q string) { done <- q })

	select {
	case got := <-done:
		if got != "mít" {
			t.Fatalf("expected committed query mít, got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("commit never fired")
	}

	if !d.IsCurrent("mít") {
		t.Fatal("expected mít to be the current committed query")
	}
}

func TestDebouncerKeystrokeResetsWindow(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	var commits []string
	record := func(q string) {
		mu.Lock()
		commits = append(commits, q)
		mu.Unlock()
	}

	d.Type("m", record)
	time.Sleep(10 * time.Millisecond)
	d.Type("mí", record)
	time.Sleep(10 * time.Millisecond)
	d.Type("mít", record)

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(commits) != 1 || commits[0] != "mít" {
		t.Fatalf("expected single commit for final keystroke, got %v", commits)
	}
}

func TestDebouncerStalenessCheck(t *testing.T) {
	d := NewDebouncer(5 * time.Millisecond)
	defer d.Stop()

	committed := make(chan struct{}, 2)
	d.Type("táo", func(string) { committed <- struct{}{} })
	<-committed

	// A newer committed query supersedes results issued for the older one.
	d.Type("chuối", func(string) { committed <- struct{}{} })
	<-committed

	if d.IsCurrent("táo") {
		t.Fatal("stale query should no longer be current")
	}
	if !d.IsCurrent("chuối") {
		t.Fatal("latest committed query should be current")
	}
	if d.Committed() != "chuối" {
		t.Fatalf("unexpected committed query %q", d.Committed())
	}
}

func TestDebouncerStopCancelsPendingCommit(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	fired := make(chan struct{}, 1)
	d.Type("rau", func(string) { fired <- struct{}{} })
	d.Stop()

	select {
	case <-fired:
		t.Fatal("commit fired after Stop")
	case <-time.After(60 * time.Millisecond):
	}
}
