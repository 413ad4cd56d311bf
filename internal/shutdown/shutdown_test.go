package shutdown

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestWithSignals_CancelledBySignal(t *testing.T) {
	ctx, stop := WithSignals(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("send SIGTERM: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled after SIGTERM")
	}
}

func TestWithSignals_StopReleases(t *testing.T) {
	ctx, stop := WithSignals(context.Background())
	stop()

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stop should cancel the context")
	}
}
