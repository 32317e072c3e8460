package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nrfppi/x/conv"
)

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim [script ...]",
		Short: "Wire channels against a simulated PPI controller",
		Long: `Starts an interactive shell over a simulated register bus for the chosen chip.
Script files, if given, are run line by line instead and the first failing
line aborts the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := NewShell(viper.GetString("chip"), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer sh.Close()
			if viper.GetBool("trace") {
				defer sh.trace()()
			}
			if len(args) > 0 {
				return runScripts(sh, args)
			}
			return runInteractive(sh)
		},
	}
	cmd.Flags().String("chip", "nrf52840", "chip to simulate ("+strings.Join(chipNames(), ", ")+")")
	cmd.Flags().Bool("trace", false, "log every register write")
	_ = viper.BindPFlag("chip", cmd.Flags().Lookup("chip"))
	_ = viper.BindPFlag("trace", cmd.Flags().Lookup("trace"))
	return cmd
}

// trace logs bus writes until the returned func is called.
func (s *Shell) trace() (stop func()) {
	return s.bus.Observe(func(addr uintptr, v uint32) {
		s.log.Debug().
			Str("addr", conv.Hex32(uint32(addr))).
			Str("value", conv.Hex32(v)).
			Msg("store")
	})
}

func runScripts(sh *Shell, paths []string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = runScript(sh, f, path)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func runScript(sh *Shell, r io.Reader, name string) error {
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := sh.Exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	return sc.Err()
}

func runInteractive(sh *Shell) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sh.reg.Chip() + "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	sh.out = rl.Stdout()
	sh.printHelp()
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		if err := sh.Exec(strings.TrimSpace(line)); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(rl.Stderr(), "error:", err)
		}
	}
}
