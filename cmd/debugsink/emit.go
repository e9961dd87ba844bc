//go:build !tinygo

package main

import (
	"strconv"
	"strings"

	"github.com/michcald/debugsink"
	"github.com/spf13/cobra"
)

var (
	enableFlag bool
	placesFlag uint8
	flashFlag  bool
	spiFlag    string
	jumperFlag int
)

func init() {
	emitCmd.Flags().BoolVar(&enableFlag, "enable", false, "Turn debug output on (output is discarded otherwise)")
	emitCmd.Flags().Uint8Var(&placesFlag, "places", debugsink.DefaultPlaces, "Digits after the decimal point for float values")
	emitCmd.Flags().BoolVar(&flashFlag, "flash", false, "Store text values in a program memory image and emit them from there")
	emitCmd.Flags().StringVar(&spiFlag, "spi", "", "SPI bus path of a serial bridge to send to instead of stdout (e.g. /dev/spidev0.0)")
	emitCmd.Flags().IntVar(&jumperFlag, "jumper", 0, "GPIO (BCM) of the debug jumper, used with --spi when --enable is not set")
	rootCmd.AddCommand(emitCmd)
}

var emitCmd = &cobra.Command{
	Use:   "emit [values...]",
	Short: "Emit values through the debug sink, one per line",
	Long: `Emit each argument through the debug sink followed by a line ending.
Integers are printed in decimal, decimals as fixed point floats with --places
digits, anything else as text.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dbg *debugsink.Debugger
		if spiFlag != "" {
			port, err := debugsink.Open(debugsink.Config{
				SpiBusPath:  spiFlag,
				EnablePin:   jumperFlag,
				ForceEnable: enableFlag,
			})
			if err != nil {
				return err
			}
			defer port.Close()
			dbg = port.Debugger
		} else {
			dbg = debugsink.New(cmd.OutOrStdout())
			dbg.SetEnabled(enableFlag)
		}

		var flash *debugsink.Flash
		if flashFlag {
			flash = debugsink.NewFlash()
		}
		for _, arg := range args {
			dbg.Println(parseValue(arg, placesFlag, flash))
		}
		return nil
	},
}

// parseValue picks the narrowest value kind arg can be printed as.
// Text goes into flash when it is non-nil.
func parseValue(arg string, places uint8, flash *debugsink.Flash) debugsink.Value {
	if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return debugsink.Int(i)
	}
	if u, err := strconv.ParseUint(arg, 10, 64); err == nil {
		return debugsink.Uint(u)
	}
	if strings.ContainsAny(arg, ".eE") {
		if f, err := strconv.ParseFloat(arg, 64); err == nil {
			return debugsink.Float(f).Places(places)
		}
	}
	if len(arg) == 1 {
		return debugsink.Char(arg[0])
	}
	if flash != nil {
		return debugsink.FlashText(flash.Store(arg))
	}
	return debugsink.Text(arg)
}
