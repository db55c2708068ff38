package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/memento/internal/engine"
	"github.com/theirongolddev/memento/internal/notify"
)

var flagNotifySend bool

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Print (or send) the daily notification text",
	RunE:  runNotify,
}

func init() {
	notifyCmd.Flags().BoolVar(&flagNotifySend, "send", false, "Dispatch to the desktop instead of printing")
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(_ *cobra.Command, _ []string) error {
	cfg, today, err := loadConfig()
	if err != nil {
		return err
	}

	report := engine.Assemble(today, cfg)
	body := notify.Build(report, cfg.NotificationStyle)

	if flagNotifySend {
		return notify.Send(body)
	}

	fmt.Println(body)
	return nil
}
