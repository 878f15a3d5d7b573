package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func captureSleeps(t *testing.T) *[]time.Duration {
	t.Helper()
	var slept []time.Duration
	orig := sleepFunc
	sleepFunc = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleepFunc = orig })
	return &slept
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	slept := captureSleeps(t)

	calls := 0
	result, err := Do(context.Background(), zap.NewNop(), "test op", Config{}, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "ok" {
		t.Fatalf("expected ok, got %q", result)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if len(*slept) != 0 {
		t.Fatalf("expected no backoff sleeps, got %v", *slept)
	}
}

func TestDo_RetriesThenSucceeds(t *testing.T) {
	slept := captureSleeps(t)

	calls := 0
	result, err := Do(context.Background(), zap.NewNop(), "test op", Config{MaxAttempts: 3}, func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != 42 {
		t.Fatalf("expected 42, got %d", result)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	want := []time.Duration{1 * time.Second, 2 * time.Second}
	if len(*slept) != len(want) {
		t.Fatalf("expected sleeps %v, got %v", want, *slept)
	}
	for i, d := range want {
		if (*slept)[i] != d {
			t.Fatalf("sleep %d: expected %v, got %v", i, d, (*slept)[i])
		}
	}
}

func TestDo_ExhaustsAttemptsAndSurfacesLastError(t *testing.T) {
	captureSleeps(t)

	lastErr := errors.New("final failure")
	calls := 0
	_, err := Do(context.Background(), zap.NewNop(), "flaky", Config{MaxAttempts: 3}, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("earlier failure")
		}
		return "", lastErr
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if !errors.Is(err, lastErr) {
		t.Fatalf("expected last error to be surfaced, got %v", err)
	}
}

func TestDo_AttemptTimeoutCancelsAttempt(t *testing.T) {
	captureSleeps(t)

	calls := 0
	_, err := Do(context.Background(), zap.NewNop(), "slow", Config{MaxAttempts: 2, AttemptTimeout: 10 * time.Millisecond}, func(ctx context.Context) (string, error) {
		calls++
		<-ctx.Done()
		return "", ctx.Err()
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestDo_StopsWhenParentCancelled(t *testing.T) {
	captureSleeps(t)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Do(ctx, zap.NewNop(), "cancelled", Config{MaxAttempts: 3}, func(ctx context.Context) (string, error) {
		calls++
		cancel()
		return "", errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected no retries after parent cancellation, got %d calls", calls)
	}
}

func TestBackoffDelay_Capped(t *testing.T) {
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 5 * time.Second},
		{10, 5 * time.Second},
	}
	for _, tc := range cases {
		if got := backoffDelay(tc.attempt); got != tc.want {
			t.Errorf("backoffDelay(%d) = %v, want %v", tc.attempt, got, tc.want)
		}
	}
}
