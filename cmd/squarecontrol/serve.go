package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squarecontrol/internal/httpapi"
	"github.com/vovakirdan/squarecontrol/internal/platform/tui"
)

var (
	flagSSHAddr  string
	flagHostKey  string
	flagNoSSH    bool
	flagHTTP     bool
	flagHTTPAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server (and optionally the HTTP API)",
	Long: `Serve the puzzle over SSH so anyone can play with:

  ssh -p 23234 localhost

With --http the JSON API is started as well. Both servers share the
progress store and stop on Ctrl+C.

Examples:
  squarecontrol serve
  squarecontrol serve --ssh-addr :2222 --host-key ./host_key
  squarecontrol serve --http --http-addr :8080
  squarecontrol serve --no-ssh --http`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagSSHAddr, "ssh-addr", "", "SSH listen address (default from config)")
	f.StringVar(&flagHostKey, "host-key", "", "Path to the SSH host key")
	f.BoolVar(&flagNoSSH, "no-ssh", false, "Do not start the SSH server")
	f.BoolVar(&flagHTTP, "http", false, "Start the HTTP API")
	f.StringVar(&flagHTTPAddr, "http-addr", "", "HTTP listen address (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	e, err := loadEnv()
	exitOnErr(err)

	if flagNoSSH && !flagHTTP {
		exitOnErr(errors.New("nothing to serve: --no-ssh needs --http"))
	}

	// One failing server stops the other.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	deps, closeStore := e.deps(ctx)
	defer closeStore()

	var servers []func() error

	if !flagNoSSH {
		sshCfg := tui.DefaultSSHServerConfig()
		if e.cfg.SSH.Address != "" {
			sshCfg.Address = e.cfg.SSH.Address
		}
		if e.cfg.SSH.IdleTimeoutMinutes > 0 {
			sshCfg.IdleTimeout = time.Duration(e.cfg.SSH.IdleTimeoutMinutes) * time.Minute
		}
		sshCfg.HostKeyPath = e.cfg.SSH.HostKey
		if flagSSHAddr != "" {
			sshCfg.Address = flagSSHAddr
		}
		if flagHostKey != "" {
			sshCfg.HostKeyPath = flagHostKey
		}

		sshServer, err := tui.NewSSHServer(sshCfg, deps)
		exitOnErr(err)
		fmt.Printf("SSH:  ssh -p %s localhost\n", portOf(sshCfg.Address))
		servers = append(servers, func() error { return sshServer.ListenAndServe(ctx) })
	}

	if flagHTTP {
		addr := e.cfg.HTTP.Address
		if flagHTTPAddr != "" {
			addr = flagHTTPAddr
		}
		api := httpapi.New(httpapi.Config{
			Catalog:   e.catalog,
			Progress:  deps.Progress,
			Generator: e.cfg.Generator,
			Logger:    e.logger.WithPrefix("http"),
		})
		fmt.Printf("HTTP: http://localhost:%s/levels\n", portOf(addr))
		servers = append(servers, func() error { return api.ListenAndServe(ctx, addr) })
	}

	fmt.Println("Press Ctrl+C to stop")

	var wg sync.WaitGroup
	errCh := make(chan error, len(servers))
	for _, serve := range servers {
		wg.Add(1)
		go func(serve func() error) {
			defer wg.Done()
			if err := serve(); err != nil {
				errCh <- err
				cancel()
			}
		}(serve)
	}
	wg.Wait()
	close(errCh)

	failed := false
	for err := range errCh {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		failed = true
	}
	if failed {
		cancel()
		closeStore()
		os.Exit(1)
	}
}

// portOf extracts the port from a listen address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
