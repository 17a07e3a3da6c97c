package main

import (
	"log/slog"
	"os"

	"github.com/Inexplicable-YL/LRU-TTLCache/internal/cmd"
	"github.com/Inexplicable-YL/LRU-TTLCache/internal/cmd/lru"
	"github.com/Inexplicable-YL/LRU-TTLCache/internal/cmd/ttl"
)

func main() {
	cacheCtlCmd := cmd.NewCacheCtlCmd()
	cacheCtlCmd.AddCommand(lru.NewLRUCmd(), ttl.NewTTLCmd())

	if err := cacheCtlCmd.Execute(); err != nil {
		slog.Error("cachectl failed", "error", err)
		os.Exit(1)
	}
}
