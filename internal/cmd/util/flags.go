package util

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

func GetMaxSize(flags *pflag.FlagSet) (int, error) {
	maxSize, err := flags.GetInt("max-size")
	if err != nil {
		return 0, fmt.Errorf("invalid max-size: %v", err)
	}
	return maxSize, nil
}

func GetTTL(flags *pflag.FlagSet) (time.Duration, error) {
	ttl, err := flags.GetDuration("ttl")
	if err != nil {
		return 0, fmt.Errorf("invalid ttl: %v", err)
	}
	return ttl, nil
}
