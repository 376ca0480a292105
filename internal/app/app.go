// Package app はプロセスの起動、依存関係のワイヤリング、サブコマンドの実行を提供する。
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hitoshi/loginkit/internal/auth"
	"github.com/hitoshi/loginkit/internal/config"
	"github.com/hitoshi/loginkit/internal/handler"
	"github.com/hitoshi/loginkit/internal/logger"
	"github.com/hitoshi/loginkit/internal/metrics"
	"github.com/hitoshi/loginkit/internal/middleware"
	"github.com/hitoshi/loginkit/internal/user"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout     = 30 * time.Second
	healthcheckInterval = 1 * time.Second
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w, slog.LevelInfo)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 3. 設定されたログレベルで再初期化
	logger.SetupDefault(w, logger.ParseLevel(cfg.LogLevel))

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	if cmd == CommandHealthcheck {
		url := fmt.Sprintf("http://localhost:%s/health", cfg.ServerPort)
		return checkHealth(url, cfg.RequestTimeout, cfg.HealthcheckMaxRetries, healthcheckInterval)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, nil)
}

// serve はAPIサーバーを起動し、ctxが終了するまでブロックする。
// ctx終了後はグレースフルシャットダウンを行う。
// readyがnilでなければ、待ち受け開始後にアドレスを1回送信する。
func serve(ctx context.Context, cfg *config.Config, ready chan<- string) error {
	// 1. メトリクスの初期化
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	// 2. ドメインサービスの初期化
	authService := auth.NewService(collector)
	userService := user.NewService(collector)

	// 3. ルーターの構築
	rateLimiter := middleware.NewRateLimiter(middleware.NewRateLimiterConfig(cfg.RateLimitGeneral))
	defer rateLimiter.Stop()

	router := handler.NewRouter(&handler.RouterDeps{
		Logger:            slog.Default(),
		HTTPRecorder:      collector,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		AuthService:       authService,
		AuthConfig: handler.AuthHandlerConfig{
			CookieDomain:  cfg.CookieDomain,
			CookieSecure:  cfg.CookieSecure,
			SessionMaxAge: cfg.SessionMaxAge,
		},
		UserService:    userService,
		MetricsHandler: metrics.Handler(reg),
	})

	// 4. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	if ready != nil {
		ready <- ln.Addr().String()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("API server starting", slog.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server listen error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down API server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		slog.Info("API server stopped gracefully")
		return nil
	})

	return g.Wait()
}

// checkHealth はヘルスチェックを実行する。
// /health エンドポイントにHTTPリクエストを送り、失敗時はmaxRetries回まで再試行する。
// maxRetriesが負の場合は再試行なしの1回のみとする。
func checkHealth(url string, timeout time.Duration, maxRetries int, interval time.Duration) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	client := &http.Client{Timeout: timeout}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(interval)
		}

		lastErr = getHealth(client, url)
		if lastErr == nil {
			return nil
		}
		slog.Warn("health check attempt failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", lastErr.Error()),
		)
	}

	return fmt.Errorf("health check failed after %d attempts: %w", maxRetries+1, lastErr)
}

// getHealth は1回分のヘルスチェックリクエストを送る。
func getHealth(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}
