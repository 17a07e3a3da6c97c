package ttl

import (
	"github.com/spf13/cobra"

	"github.com/Inexplicable-YL/LRU-TTLCache/internal/cmd/script"
	"github.com/Inexplicable-YL/LRU-TTLCache/internal/cmd/util"
	"github.com/Inexplicable-YL/LRU-TTLCache/pkg/cache"
)

func NewTTLCmd() *cobra.Command {
	ttlCmd := &cobra.Command{
		Use:     "ttl [ops...]",
		Short:   "Run operations against a time-bounded TTL cache",
		Example: "  cachectl ttl -t 100ms set:a=1 get:a sleep:150ms get:a",
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, err := util.GetTTL(cmd.Flags())
			if err != nil {
				return err
			}
			c, err := cache.NewTTL[string, string](ttl)
			if err != nil {
				return err
			}
			ops, err := script.ParseAll(args)
			if err != nil {
				return err
			}
			return script.Run(cmd.OutOrStdout(), c, ops)
		},
	}
	ttlCmd.Flags().DurationP("ttl", "t", cache.DefaultTTL, "lifetime of each entry after it is set")
	return ttlCmd
}
