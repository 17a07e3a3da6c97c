package cmd

import (
	"github.com/spf13/cobra"
)

func NewCacheCtlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cachectl",
		Short: "Exercise the LRU and TTL caches from the command line",
		Long: `cachectl runs a sequence of operations against an in-memory cache and
prints each outcome, ending with the cache's debug rendering.

Operations: set:key=value, get:key, getd:key=default, del:key, has:key,
len, keys, sleep:duration.`,
	}
	return cmd
}
