package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "scan":
		err = runScan(args)
	case "report":
		err = runReport(args)
	case "watch":
		err = runWatch(args)
	case "serve":
		err = runServe(args)
	case "version":
		fmt.Printf("propscope %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "propscope %s: %v\n", command, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: propscope <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  scan       Scan codebases and generate a usage report")
	fmt.Println("  report     Re-render a saved JSON report in another format")
	fmt.Println("  watch      Watch a codebase and keep the report live")
	fmt.Println("  serve      Start MCP server over a saved report")
	fmt.Println("  version    Print version")
	fmt.Println("  help       Show this help message")
}
