package db

import (
	"testing"
	"time"

	"github.com/ssms/scholarship/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "ssms"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "ssms"
	cfg.Database.MinConns = 1
	cfg.Database.MaxConns = 8
	cfg.Database.ConnMaxLifetime = "45m"
	return cfg
}

func TestPoolConfig(t *testing.T) {
	pc, err := PoolConfig(testConfig())
	if err != nil {
		t.Fatalf("PoolConfig: %v", err)
	}

	if pc.MaxConns != 8 || pc.MinConns != 1 {
		t.Errorf("conns = %d/%d, want 1/8", pc.MinConns, pc.MaxConns)
	}
	if pc.MaxConnLifetime != 45*time.Minute {
		t.Errorf("lifetime = %v", pc.MaxConnLifetime)
	}
	if pc.ConnConfig.Host != "db.internal" || pc.ConnConfig.Port != 5433 {
		t.Errorf("host = %s:%d", pc.ConnConfig.Host, pc.ConnConfig.Port)
	}
	if pc.BeforeAcquire == nil {
		t.Error("connections must be pinged before acquire")
	}
}

func TestPoolConfigRejectsBadLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "forever"

	if _, err := PoolConfig(cfg); err == nil {
		t.Fatal("expected an error for a malformed lifetime")
	}
}
