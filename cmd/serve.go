package cmd

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/itsmostafa/runcode/internal/repl"
	"github.com/itsmostafa/runcode/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string
var serveDebug bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP execution server",
	Long:  `Start the HTTP server exposing GET / and POST /run_code against a single shared namespace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := repl.NewNamespace(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Config{
			Addr:   serveAddr,
			Debug:  serveDebug,
			Output: cmd.OutOrStdout(),
		}, ns)
		return srv.Run(ctx)
	},
}

// envBool reads a boolean env var. Unset or unparsable values are false.
func envBool(name string) bool {
	enabled, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && enabled
}

func init() {
	// Address flag with env var fallback
	defaultAddr := server.DefaultAddr
	if envAddr := os.Getenv("RUNCODE_ADDR"); envAddr != "" {
		defaultAddr = envAddr
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", defaultAddr, "Address to listen on (host:port)")

	serveCmd.Flags().BoolVar(&serveDebug, "debug", envBool("RUNCODE_DEBUG"), "Run gin in debug mode")

	rootCmd.AddCommand(serveCmd)
}
