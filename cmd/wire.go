package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/htdinh/pfob-cli/internal/adapters/api"
	noticerender "github.com/htdinh/pfob-cli/internal/adapters/render/notices"
	tomlrepo "github.com/htdinh/pfob-cli/internal/adapters/repo/toml"
	chainstore "github.com/htdinh/pfob-cli/internal/adapters/token/chain"
	"github.com/htdinh/pfob-cli/internal/application"
	"github.com/htdinh/pfob-cli/internal/logger"
	"github.com/htdinh/pfob-cli/internal/money"
	"github.com/htdinh/pfob-cli/internal/ports"
)

const (
	configDirName     = ".pfob"
	defaultAPIBaseURL = "https://pfob-backend-production.up.railway.app/api"
	defaultHTTPTimout = 30 * time.Second
)

type app struct {
	tx        ports.TransactionsAPI
	sessions  *application.SessionService
	accounts  *application.AccountService
	goals     *application.GoalService
	transfers *application.TransferService
	dashboard *application.DashboardService
	notices   *application.NotificationCenter
	refresh   *application.RefreshSignal
	format    *money.Formatter
	log       *slog.Logger
}

func wireApp() (*app, error) {
	log := logger.FromEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)
	cfg.SetDefault("api.base_url", defaultAPIBaseURL)
	cfg.SetDefault("http.timeout", defaultHTTPTimout)
	cfg.SetEnvPrefix("PFOB")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	tokens, err := chainstore.NewEnvFirstWithFileFallback(configDir)
	if err != nil {
		return nil, fmt.Errorf("wire token store chain: %w", err)
	}

	snapshots, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire snapshot repository: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.GetDuration("http.timeout")}
	client := api.NewClient(cfg.GetString("api.base_url"), httpClient, tokens, log)

	notices := application.NewNotificationCenter(nil)
	refresh := application.NewRefreshSignal()

	sessions := application.NewSessionService(client, tokens, log)
	client.SetUnauthorizedHook(func() {
		sessions.Invalidate(context.Background())
	})

	accounts := application.NewAccountService(client, snapshots, notices, refresh, ports.SystemClock{}, log)
	transfers := application.NewTransferService(client, &paneRefresher{accounts: accounts}, notices, refresh, log)

	return &app{
		tx:        client,
		sessions:  sessions,
		accounts:  accounts,
		goals:     application.NewGoalService(client, client, notices),
		transfers: transfers,
		dashboard: application.NewDashboardService(client, client, client, ports.SystemClock{}),
		notices:   notices,
		refresh:   refresh,
		format:    money.NewFormatter(),
		log:       log,
	}, nil
}

// paneRefresher adapts the account service to the transfer workflow's UI
// surface. The CLI has no persistent form to close, so CloseForm is a no-op.
type paneRefresher struct {
	accounts *application.AccountService
}

var _ application.TransferUI = (*paneRefresher)(nil)

func (r *paneRefresher) CloseForm() {}

func (r *paneRefresher) RefreshAccounts(ctx context.Context) error {
	_, err := r.accounts.Overview(ctx)
	return err
}

func (r *paneRefresher) RefreshRecipients(ctx context.Context) error {
	_, err := r.accounts.Recipients(ctx)
	return err
}

// flushNotices drains the queued notices to w. Commands call this once their
// work is done so the queue never carries over between invocations.
func (a *app) flushNotices(w io.Writer) {
	queued := a.notices.Notices()
	if err := noticerender.Flush(w, queued); err != nil {
		a.log.Warn("flush notices", "error", err)
	}
	for _, notice := range queued {
		a.notices.Dismiss(notice.ID)
	}
}
