package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/childebao/j2objc/native"
)

func main() {
	var (
		kindName    = flag.String("kind", "int", "Element kind (boolean, byte, char, short, int, long, float, double)")
		length      = flag.Int("len", 8, "Array length for zero-initialized construction")
		initValues  = flag.String("init", "", "Initial elements, comma-separated (overrides -len)")
		script      = flag.String("op", "", "Operation script (set:i:v, get:i, incr:i, decr:i, postincr:i, postdecr:i, export:off, len)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		native.SetLogger(logger)
	}

	// With no script, fall into the TUI when attached to a terminal.
	if *script == "" && !*interactive {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			*interactive = true
		} else {
			fmt.Fprintln(os.Stderr, "Usage: arraylab -kind <kind> [-len n | -init v,v,...] -op <script>")
			fmt.Fprintln(os.Stderr, "       arraylab -kind <kind> [-len n | -init v,v,...] -i  (interactive mode)")
			os.Exit(1)
		}
	}

	if *interactive {
		if err := runInteractive(*kindName, *length, *initValues); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*kindName, *length, *initValues, *script); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(kindName string, length int, initValues, script string) error {
	arr, err := newLabArray(kindName, length, initValues)
	if err != nil {
		return err
	}

	fmt.Printf("%s with %d elements\n", arr.Kind().TypeName(), arr.Len())

	for _, op := range strings.Split(script, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		out, err := apply(arr, op)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		fmt.Println(out)
	}

	fmt.Printf("final: %s\n", strings.Join(arr.Elems(), " "))
	return nil
}
