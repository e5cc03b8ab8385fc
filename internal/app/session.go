// Package app wires the managers into a user session and performs the session-start loads.
package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/dkazarov/dk_go_stream_alerts/internal/service/donation"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/modelalert"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/resolver"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/servicelink"
	"github.com/dkazarov/dk_go_stream_alerts/internal/service/walletlink"
)

// Notifier defines a set of methods for types surfacing operation failures to the user.
type Notifier interface {
	Notify(message string)
}

// Session struct defines data structure handling and provides support for adding new implementations.
type Session struct {
	Wallets     []modelalert.Wallet
	Services    servicelink.Processor
	Donations   donation.Processor
	WalletLinks walletlink.Loader
	notifier    Notifier
	log         *zap.Logger
}

// InitSession initializes a Session object and sets its attributes.
func InitSession(wallets []modelalert.Wallet, services servicelink.Processor, donations donation.Processor, walletLinks walletlink.Loader, notifier Notifier, log *zap.Logger) *Session {
	return &Session{
		Wallets:     wallets,
		Services:    services,
		Donations:   donations,
		WalletLinks: walletLinks,
		notifier:    notifier,
		log:         log,
	}
}

// Bootstrap performs the session-start loads under the first wallet's credentials. A user
// with no wallets gets an idle session, not an error. Each load failure is surfaced via the
// notifier without suppressing the remaining loads.
func (s *Session) Bootstrap(ctx context.Context) {
	if _, err := resolver.DefaultReadKey(s.Wallets); err != nil {
		s.log.Warn("no wallets available, skipping session-start loads", zap.Error(err))
		return
	}
	defaultWalletID := s.Wallets[0].ID
	if _, err := s.WalletLinks.Load(ctx, s.Wallets, defaultWalletID); err != nil {
		s.log.Warn("wallet link loading failed", zap.Error(err))
		s.notifier.Notify(fmt.Sprintf("could not load linked wallets: %v", err))
	}
	if _, err := s.Donations.List(ctx, s.Wallets, defaultWalletID); err != nil {
		s.log.Warn("donation loading failed", zap.Error(err))
		s.notifier.Notify(fmt.Sprintf("could not load donations: %v", err))
	}
	if _, err := s.Services.List(ctx, s.Wallets, defaultWalletID); err != nil {
		s.log.Warn("service link loading failed", zap.Error(err))
		s.notifier.Notify(fmt.Sprintf("could not load service links: %v", err))
	}
}

// ReadWallets loads the user's wallets with their scoped keys from a JSON file.
func ReadWallets(path string) ([]modelalert.Wallet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wallets []modelalert.Wallet
	if err = json.Unmarshal(raw, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

// LogNotifier surfaces operation failures via the structured logger.
type LogNotifier struct {
	Log *zap.Logger
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(message string) {
	n.Log.Warn(message)
}

// StdinConfirmer prompts on the terminal and accepts y/yes answers.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements the confirmation prompt for destructive operations.
func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(c.In)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
