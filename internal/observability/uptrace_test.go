package observability

import (
	"context"
	"testing"

	"github.com/crickethub/club-api/internal/config"
	"github.com/crickethub/club-api/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "club-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof server: %v", err)
	}
	if srv != nil {
		t.Fatal("expected no server when pprof is disabled")
	}
	if err := StopPprofServer(srv, logging.NewNop(), 0); err != nil {
		t.Fatalf("stop pprof server: %v", err)
	}
}
