package main

import (
	"context"
	"os"

	"github.com/walteh/iconsplit/pkg/log"
)

func main() {
	// Setup logging before anything else so early failures are visible
	logger := setupLogging(false)
	ctx := logger.WithContext(context.Background())

	// Create user feedback printer
	feedback := log.NewUserFeedback(ctx)

	rootCmd := newRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		feedback.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
