// Command fenview parses a FEN string and draws the position in the
// terminal, optionally writing an SVG diagram as well.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corentings/fen"
	"github.com/corentings/fen/image"
)

var (
	cfgFile string
	ascii   bool
	noColor bool
	svgFile string
)

var rootCmd = &cobra.Command{
	Use:   "fenview \"<FEN>\"",
	Short: "Parse a FEN string and draw the position",
	Long: `fenview parses a Forsyth-Edwards Notation string and draws the
position as a board diagram with the remaining FEN fields listed below it.

Example:
  fenview "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return cmd.Usage()
	}

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("ascii") {
		cfg.ASCII = ascii
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = noColor
	}

	pos, err := fen.Decode(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), render(pos, cfg))

	if svgFile != "" {
		if err := writeSVG(svgFile, pos, cfg); err != nil {
			return fmt.Errorf("writing SVG: %w", err)
		}
	}
	return nil
}

func writeSVG(path string, pos *fen.Position, cfg *displayConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return image.SVG(f, pos,
		image.SquareColors(cfg.LightSquare, cfg.DarkSquare),
		image.Coordinates())
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "YAML display config file")
	rootCmd.Flags().BoolVar(&ascii, "ascii", false, "use FEN letters instead of figurines")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "plain output without terminal styling")
	rootCmd.Flags().StringVar(&svgFile, "svg", "", "also write the board to an SVG file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
