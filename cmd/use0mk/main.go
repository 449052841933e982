// Command use0mk shortens, previews and deletes 0.mk links from the command
// line and can serve the same operations as a small HTTP gateway.
//
// Usage:
//
//	use0mk [flags] shorten <url> [short-name]
//	use0mk [flags] preview <short-name | short-uri>
//	use0mk [flags] delete <delete-uri> <delete-code>
//	use0mk [flags] text < input.txt
//	use0mk [flags] serve
//	use0mk version
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/use0mk/internal/app/server"
	"github.com/atinyakov/use0mk/internal/app/service"
	"github.com/atinyakov/use0mk/internal/config"
	"github.com/atinyakov/use0mk/internal/logger"
	"github.com/atinyakov/use0mk/internal/models"
	"github.com/atinyakov/use0mk/internal/worker"
	"github.com/atinyakov/use0mk/pkg/use0mk"
)

var buildVersion string
var buildDate string
var buildCommit string

var errUsage = errors.New("usage: use0mk [flags] shorten|preview|delete|text|serve|version")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	options, rest, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if len(rest) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	log := logger.New()
	if err := log.Init(options.LogLevel, options.LogEncoding); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() {
		_ = log.Log.Sync()
	}()

	client := use0mk.New(options.Endpoints(), options.Credentials(),
		use0mk.WithHTTPClient(use0mk.NewHTTPClient(options.Timeout.Duration)),
		use0mk.WithLogger(log.Log),
		use0mk.WithMaxRedirects(options.MaxRedirects),
	)

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "shorten":
		err = shorten(ctx, client, cmdArgs, stdout)
	case "preview":
		err = preview(ctx, client, cmdArgs, stdout)
	case "delete":
		err = deleteLink(ctx, client, cmdArgs, stdout)
	case "text":
		err = text(ctx, client, stdin, stdout)
	case "serve":
		log.Info("use0mk gateway",
			"version", orNA(buildVersion),
			"date", orNA(buildDate),
			"commit", orNA(buildCommit),
		)
		err = serve(ctx, client, options, log.Log)
	case "version":
		fmt.Fprintf(stdout, "Build version: %s\n", orNA(buildVersion))
		fmt.Fprintf(stdout, "Build date: %s\n", orNA(buildDate))
		fmt.Fprintf(stdout, "Build commit: %s\n", orNA(buildCommit))
	default:
		err = fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shorten(ctx context.Context, c *use0mk.Client, args []string, w io.Writer) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("shorten <url> [short-name]: %w", errUsage)
	}
	name := ""
	if len(args) == 2 {
		name = args[1]
	}

	link, err := c.Shorten(ctx, args[0], name)
	if err != nil {
		return err
	}
	return printJSON(w, link)
}

func preview(ctx context.Context, c *use0mk.Client, args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("preview <short-name | short-uri>: %w", errUsage)
	}

	spec := use0mk.ByShortName(args[0])
	if c.IsServiceURI(args[0]) {
		spec = use0mk.ByURI(args[0])
	}

	link, err := c.Preview(ctx, spec)
	if err != nil {
		return err
	}
	return printJSON(w, link)
}

func deleteLink(ctx context.Context, c *use0mk.Client, args []string, w io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("delete <delete-uri> <delete-code>: %w", errUsage)
	}

	ok, err := c.Delete(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return printJSON(w, models.DeleteResponse{Deleted: ok})
}

// text prints the rewritten input. When shortening fails midway the links
// created so far are printed as JSON, so they can be deleted.
func text(ctx context.Context, c *use0mk.Client, r io.Reader, w io.Writer) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out, links, err := c.ShortenText(ctx, string(in))
	if err != nil {
		if len(links) > 0 {
			_ = printJSON(w, links)
		}
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

func serve(ctx context.Context, c *use0mk.Client, options *config.Options, log *zap.Logger) error {
	deleter := worker.NewDeleteTaskWorker(log, deleterFunc(func(ctx context.Context, req models.DeleteRequest) (bool, error) {
		return c.Delete(ctx, req.DeleteURI, req.DeleteCode)
	}), options.DeleteBatchSize, options.DeleteFlushInterval.Duration)

	workerDone := make(chan struct{})
	links := service.NewLinks(c, log, deleter.GetInChannel(), workerDone)

	go func() {
		deleter.FlushRecords(ctx)
		close(workerDone)
	}()

	srv := &http.Server{
		Addr:              options.ServerAddress,
		Handler:           server.Init(log, options.TrustedSubnet, options.Origins(), links),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("address", options.ServerAddress))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	<-workerDone
	return nil
}

type deleterFunc func(ctx context.Context, req models.DeleteRequest) (bool, error)

func (f deleterFunc) Delete(ctx context.Context, req models.DeleteRequest) (bool, error) {
	return f(ctx, req)
}
