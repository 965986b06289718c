package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tinysparql/go-ontology/writeback"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "run the writeback controller until idle-shutdown or a termination signal",
	RunE:  runDaemon,
}

func init() {
	daemonCmd.Flags().Duration("idle-timeout", 5*time.Minute, "writeback controller idle-shutdown timeout")
	viper.BindPFlag("writeback.idle_timeout", daemonCmd.Flags().Lookup("idle-timeout"))
}

func runDaemon(cmd *cobra.Command, args []string) error {
	timeout := viper.GetDuration("writeback.idle_timeout")
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	ctrl := writeback.NewController(timeout, log)

	transport, err := writeback.NewDBusTransport(ctrl)
	if err != nil {
		log.WithError(err).Error("daemon: failed to acquire writeback transport")
		return err
	}
	defer transport.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ctrl.Run(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("daemon: shutting down")
	return nil
}
