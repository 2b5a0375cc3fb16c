package main

import (
	"context"
	"strings"
	"testing"

	"car_rental/internal/config"
)

func TestRun_ReturnsConnectionErrors(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL:    "postgres://postgres@localhost:notaport/wypozyczalnia",
		ORMDatabaseURL: "postgres://postgres@localhost:notaport/wypozyczalnia",
		ServerPort:     "0",
		GormLogLevel:   "silent",
		GinMode:        "test",
	}

	err := run(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "failed to connect to database") {
		t.Fatalf("unexpected error: %v", err)
	}
}
