package cmd

import (
	"fmt"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sqlkit/sqlformat/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "Start the SQL formatter HTTP API",
	Long: `Start a local web server exposing the formatter, minifier, and
validator as a JSON API.

Endpoints:
  POST /api/format    format SQL with a preset or explicit options
  POST /api/validate  run heuristic validation
  POST /api/minify    strip comments and collapse whitespace
  GET  /api/options   list available options, presets, and keywords
  GET  /api/health    health check`,
	Example: `  # Start on the configured host and port
  sqlformat serve

  # Start on a custom port
  sqlformat serve --port 3000

  # Start without auto-opening the browser
  sqlformat serve --no-browser`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "host to bind (default: 127.0.0.1)")
	serveCmd.Flags().Int("port", 0, "port to serve on (default: 5000)")
	serveCmd.Flags().Bool("no-browser", false, "don't auto-open browser")
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := setupLogging()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// CLI flags override the config file.
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	srv := server.New(cfg, log)

	noBrowser, _ := cmd.Flags().GetBool("no-browser")
	if !noBrowser {
		url := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
		go openBrowser(url)
	}

	fmt.Printf("Starting SQL formatter API on http://%s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return
	}

	_ = cmd.Start()
}
