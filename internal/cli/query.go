package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/primes/internal/cache"
	"github.com/dshills/primes/internal/config"
	"github.com/dshills/primes/internal/engine"
	"github.com/dshills/primes/internal/output"
)

// Shared query flags
var (
	flagFormat    string
	flagOut       string
	flagStore     string
	flagCacheFile string
	flagLogLevel  string
	flagQuiet     bool
	flagMethod    string
)

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, yaml, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagStore, "store", "", "Cache store (file, redis)")
	cmd.Flags().StringVar(&flagCacheFile, "cache-file", "", "Cache file path for the file store")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Do not draw the progress indicator")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagStore != "" {
		m["store"] = flagStore
	}
	if flagCacheFile != "" {
		m["cacheFile"] = flagCacheFile
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	if flagQuiet {
		m["quiet"] = "true"
	}
	return m
}

// parseArgs parses non-negative decimal integers.
func parseArgs(args []string) ([]uint64, error) {
	nums := make([]uint64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: must be between 0 and %d", a, uint64(math.MaxUint64))
		}
		nums = append(nums, v)
	}
	return nums, nil
}

// openStore builds the configured cache store. The returned close function
// is always non-nil.
func openStore(ctx context.Context, cfg config.Config) (cache.Store, func(), error) {
	switch cfg.Store {
	case "redis":
		s, err := cache.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key)
		if err != nil {
			return nil, func() {}, &cache.InitializationError{Location: "redis:" + cfg.Redis.Key, Err: err}
		}
		return s, func() { s.Close() }, nil
	default:
		s, err := cache.NewFileStore(cfg.CacheFile)
		if err != nil {
			return nil, func() {}, &cache.InitializationError{Location: "cache file", Err: err}
		}
		return s, func() {}, nil
	}
}

// runQuery is the shared RunE body of the operation commands.
func runQuery(op engine.Operation, args []string) error {
	nums, err := parseArgs(args)
	if err != nil {
		return err
	}
	method := engine.MethodAuto
	if op == engine.OpCheck {
		if method, err = engine.ParseMethod(flagMethod); err != nil {
			return err
		}
	}
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	if err := setupLogging(os.Stderr, cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exitCode = execute(ctx, cfg, engine.Request{Op: op, Args: nums, Method: method}, os.Stderr)
	return nil
}

// execute runs req against the configured cache and writes the result. It
// returns the process exit code.
func execute(ctx context.Context, cfg config.Config, req engine.Request, stderr io.Writer) int {
	store, closeStore, err := openStore(ctx, cfg)
	defer closeStore()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitInitError
	}
	return runWithStore(ctx, cfg, store, req, stderr)
}

// runWithStore runs req with the cache held by store. A result that was
// computed is always written, even when flushing the cache afterwards fails.
func runWithStore(ctx context.Context, cfg config.Config, store cache.Store, req engine.Request, stderr io.Writer) int {
	var (
		res    *engine.Result
		runErr error
	)
	err := cache.With(ctx, store, func(h *cache.Handle) error {
		res, runErr = withProgress(stderr, !cfg.Quiet, func(progress engine.ProgressFunc) (*engine.Result, error) {
			eng := engine.New(h.List, engine.Options{
				LargeThreshold:    cfg.LargeThreshold,
				FalsePositiveRate: cfg.FalsePositiveRate,
				ProgressEvery:     cfg.ProgressEvery,
				Progress:          progress,
			})
			return eng.Run(ctx, req)
		})
		return runErr
	})

	code := ExitSuccess
	switch {
	case res == nil && cache.IsInitializationError(err):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitInitError
	case runErr == nil:
	case engine.IsCanceled(runErr):
		logrus.WithField("op", req.Op).Info("operation interrupted")
		fmt.Fprintf(stderr, "Interrupted: %v\n", err)
		code = ExitCanceled
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}
	if res == nil {
		return ExitRuntimeError
	}

	if werr := output.WriteResult(res, cfg.Format, flagOut); werr != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", werr)
		return ExitRuntimeError
	}

	// With only runErr nil, err is the flush failure.
	if runErr == nil && err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitRuntimeError
	}
	return code
}
