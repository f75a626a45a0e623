package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTimeProviderSleep(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	if err := provider.Sleep(context.Background(), 10*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if diff := provider.Now().Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}

	if err := provider.Sleep(context.Background(), 0); err != nil {
		t.Errorf("zero sleep: %v", err)
	}
}

func TestTimeProviderSleepCancelled(t *testing.T) {
	provider := NewTimeProvider()
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := provider.Sleep(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("cancellation did not interrupt sleep")
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	// Test initial time
	now := mock.Now()
	if !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	// Test SetTime
	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	now = mock.Now()
	if !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	// Test Advance
	mock.Advance(1 * time.Hour)
	now = mock.Now()
	expected := newTime.Add(1 * time.Hour)
	if !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}

	// Test Sleep advances and records
	if err := mock.Sleep(context.Background(), 30*time.Minute); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	expected = expected.Add(30 * time.Minute)
	if now = mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Sleep, got %v", expected, now)
	}
	if sleeps := mock.Sleeps(); len(sleeps) != 1 || sleeps[0] != 30*time.Minute {
		t.Errorf("Sleeps() = %v", sleeps)
	}

	// Test Sleep on a done context leaves time unchanged
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := mock.Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep on cancelled ctx = %v", err)
	}
	if !mock.Now().Equal(expected) {
		t.Error("cancelled Sleep advanced time")
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	done := make(chan bool)

	// Multiple readers
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
			done <- true
		}()
	}

	// Multiple writers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
			done <- true
		}()
	}

	for i := 0; i < 15; i++ {
		<-done
	}

	expected := startTime.Add(500 * time.Millisecond)
	if !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after concurrent advances, got %v", expected, mock.Now())
	}
}
