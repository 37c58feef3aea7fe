package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/robinlinden/ffs/internal/config"
	"github.com/robinlinden/ffs/internal/lexer"
	"github.com/robinlinden/ffs/internal/parser"
	"github.com/robinlinden/ffs/internal/util"
)

var (
	hidePanic = true // Hide full trace on panics
)

// showUsage prints a terse usage string.
//
func showUsage() {
	_, _ = fmt.Fprintf(config.ErrOut, "Usage: %s [-trace] [-version] <input_file>\n", config.Me)
}

// main
//
//goland:noinspection GoUnhandledErrorResult // fmt.*
func main() {
	// NOTE: Instead of os.Exit, set exitCode then return
	//
	exitCode := 0
	defer func() {
		// os.Exit aborts program immediately, so delay as long as possible
		//
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	config.ErrOut = os.Stderr
	config.Me = path.Base(os.Args[0])
	// Configure logging
	//
	log.SetFlags(0)
	log.SetPrefix(config.Me + ": ")
	// Capture panics as log messages
	//
	//goland:noinspection GoBoolExpressions
	if hidePanic {
		defer func() {
			if r := recover(); r != nil {
				// ~= log.Fatal
				log.Print(r)
				exitCode = 1
			}
		}()
	}

	showVersion := flag.Bool("version", false, "show version and exit")
	flag.BoolVar(&config.EnableFnTrace, "trace", false, "trace lexer/parser fn calls")
	flag.Usage = showUsage
	flag.Parse()

	if *showVersion {
		fmt.Println(config.Me, versionString())
		return
	}
	if flag.NArg() != 1 {
		showUsage()
		exitCode = 2
		return
	}
	file := flag.Arg(0)
	// Read file into memory
	//
	fileBytes, exists, err := util.ReadFileIfExists(file)
	if err != nil {
		log.Printf("ERROR: input '%s': %s", file, err.Error())
		exitCode = 2
		return
	}
	if !exists {
		log.Printf("ERROR: input '%s': no such file", file)
		exitCode = 2
		return
	}
	input := string(fileBytes)

	fmt.Printf("Input:\n%s\n\n", input)

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Printf("ERROR: %s", err.Error())
		exitCode = 1
		return
	}
	fmt.Printf("Tokens:\n%s\n", lexer.TokensString(tokens))

	if _, err = parser.Parse(input); err != nil {
		log.Printf("ERROR: %s", err.Error())
		exitCode = 1
		return
	}
}
