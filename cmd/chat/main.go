package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heweile/MoviePilot-Plugins/chat"
	"github.com/heweile/MoviePilot-Plugins/logger"
	"github.com/spf13/cobra"
)

var dataPath = chat.DataFileName
var maxMessages = chat.DefaultMaxMessages
var onlineTimeout = chat.DefaultOnlineTimeout
var msgType = "text"
var addr = "127.0.0.1:3100"

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat room message log",
}

func openRoom() (*chat.Room, error) {
	return chat.Open(chat.Config{
		DataPath:      dataPath,
		MaxMessages:   maxMessages,
		OnlineTimeout: onlineTimeout,
	})
}

var Send = &cobra.Command{
	Use:   "send <username> <content>",
	Short: "Append a message to the log",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		room, err := openRoom()
		if err != nil {
			return err
		}
		msg, err := room.Send(args[0], args[1], msgType)
		if err != nil {
			return err
		}
		logger.Info("Sent message", "id", msg.ID, "username", msg.Username, "path", dataPath)
		return nil
	},
}

var Messages = &cobra.Command{
	Use:   "messages",
	Short: "Print the message log as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		room, err := openRoom()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(room.Messages())
	},
}

var Clear = &cobra.Command{
	Use:   "clear",
	Short: "Remove every message from the log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		room, err := openRoom()
		if err != nil {
			return err
		}
		if err := room.Clear(); err != nil {
			return err
		}
		logger.Info("Cleared messages", "path", dataPath)
		return nil
	},
}

var Serve = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		room, err := openRoom()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:              addr,
			Handler:           chat.NewRouter(room),
			ReadHeaderTimeout: 10 * time.Second,
		}
		errs := make(chan error, 1)
		go func() {
			errs <- srv.ListenAndServe()
		}()
		cfg := room.Config()
		logger.Info("Serving chat", "addr", addr, "data", cfg.DataPath,
			"maxMessages", cfg.MaxMessages, "onlineTimeout", cfg.OnlineTimeout)

		select {
		case err := <-errs:
			return err
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("Chat server stopped")
		return nil
	},
}

func init() {
	Cmd.AddCommand(Send)
	Cmd.AddCommand(Messages)
	Cmd.AddCommand(Clear)
	Cmd.AddCommand(Serve)

	flags := Cmd.PersistentFlags()
	flags.StringVarP(&dataPath, "data", "d", dataPath, "Chat data file")
	flags.IntVar(&maxMessages, "max-messages", maxMessages, "Messages kept in the log")
	flags.DurationVar(&onlineTimeout, "online-timeout", onlineTimeout, "Idle time before a user counts as offline")

	Send.Flags().StringVarP(&msgType, "type", "t", msgType, "Message type")
	Serve.Flags().StringVar(&addr, "addr", addr, "Listen address")
}
