package cmd

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/weiyudev/Monster-Competition/internal/config"
	"github.com/weiyudev/Monster-Competition/internal/random"
	"github.com/weiyudev/Monster-Competition/internal/session"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play <config> [<seed>|debug]",
	Short: "Start an interactive competition session",
	Long: `Loads a competition configuration and reads commands from standard
input. An optional numeric seed makes every random draw reproducible;
"debug" instead hands every draw to you as a prompt.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		seed := time.Now().UnixNano()
		debug := false
		if len(args) == 2 {
			if strings.EqualFold(args[1], "debug") {
				debug = true
			} else {
				v, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error, invalid seed: %s\n", args[1])
					os.Exit(1)
				}
				seed = v
			}
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
		// The configuration echoes before validation, errors and all.
		fmt.Print(string(data))
		if !strings.HasSuffix(string(data), "\n") {
			fmt.Println()
		}
		set, err := config.Parse(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}

		level := slog.LevelWarn
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		in := bufio.NewScanner(os.Stdin)
		var src random.Source
		var oracle *random.Oracle
		if debug {
			oracle = random.NewOracle(in, os.Stdout)
			src = oracle
		} else {
			src = random.NewSeeded(seed, os.Stdout)
		}

		sess := session.New(set, src, oracle, os.Stdout, logger)
		sess.Announce()
		sess.Run(in)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
