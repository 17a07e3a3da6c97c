package lru

import (
	"github.com/spf13/cobra"

	"github.com/Inexplicable-YL/LRU-TTLCache/internal/cmd/script"
	"github.com/Inexplicable-YL/LRU-TTLCache/internal/cmd/util"
	"github.com/Inexplicable-YL/LRU-TTLCache/pkg/cache"
)

func NewLRUCmd() *cobra.Command {
	lruCmd := &cobra.Command{
		Use:     "lru [ops...]",
		Short:   "Run operations against a capacity-bounded LRU cache",
		Example: "  cachectl lru -m 2 set:a=1 set:b=2 get:a set:c=3 keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			maxSize, err := util.GetMaxSize(cmd.Flags())
			if err != nil {
				return err
			}
			c, err := cache.NewLRU[string, string](maxSize)
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
	lruCmd.Flags().IntP("max-size", "m", cache.DefaultMaxSize, "maximum entry count before LRU eviction")
	return lruCmd
}
