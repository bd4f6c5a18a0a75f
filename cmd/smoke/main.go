// Command smoke sweeps a deployed prompt endpoint with preflight, validation
// and generation requests and prints a pass/fail table.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout      = 60 * time.Second
	maxResponseBodySize = 1 << 20 // 1 MiB
	maxLoggedBodyBytes  = 2048
)

func main() {
	logger, err := glog.NewConsoleWithName("prompt-api-smoke", glog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %+v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("smoke run failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("all checks passed")
}

func run(ctx context.Context, logger glog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	cases := casesFor(cfg)
	logger.Info("starting smoke sweep",
		zap.String("base_url", cfg.APIBase),
		zap.String("variant", string(cfg.Variant)),
		zap.Int("case_count", len(cases)),
	)

	httpClient := &http.Client{Timeout: cfg.Timeout}
	resultsCh := make(chan caseResult, len(cases))

	var (
		results   []caseResult
		collectWg sync.WaitGroup
	)
	collectWg.Go(func() {
		for res := range resultsCh {
			results = append(results, res)
			if res.Success {
				logger.Info("check passed",
					zap.String("case", res.Name),
					zap.Int("status", res.StatusCode),
					zap.Duration("duration", res.Duration))
				continue
			}
			logger.Warn("check failed",
				zap.String("case", res.Name),
				zap.Int("status", res.StatusCode),
				zap.Duration("duration", res.Duration),
				zap.String("error", res.ErrorReason),
				zap.String("response_body", res.ResponseBody))
		}
	})

	grp, grpCtx := errgroup.WithContext(ctx)
	for _, c := range cases {
		grp.Go(func() error {
			resultsCh <- performCase(grpCtx, httpClient, cfg, c)
			return nil
		})
	}

	_ = grp.Wait()
	close(resultsCh)
	collectWg.Wait()

	rep := buildReport(cases, results)
	renderReport(os.Stdout, rep)

	if rep.failedCount > 0 {
		return errors.Errorf("%d of %d checks failed", rep.failedCount, len(results))
	}
	return nil
}
