// Command dunya browses the Dunya music archive and extracts
// predominant-melody pitch tracks from audio files.
//
// Usage:
//
//	dunya list <recordings|artists|concerts|works|raagas|taalas|instruments>
//	dunya get <recording|artist|concert|work|raaga|taala> <mbid>
//	dunya download [-concert] [-o dir] <mbid>
//	dunya pitch [-o file] <audio.wav>
//
// The API token is read from the DUNYA_TOKEN environment variable (a .env
// file is honored) or from the token field of dunya.yaml.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

const defaultConfigFile = "dunya.yaml"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	_ = godotenv.Load()

	if len(args) < 1 {
		printUsage()
		return 1
	}

	cfg, err := loadConfig(defaultConfigFile)
	if err != nil {
		fail("%v", err)
		return 1
	}
	if tok := os.Getenv("DUNYA_TOKEN"); tok != "" {
		cfg.Token = tok
	}

	ctx := context.Background()

	switch args[0] {
	case "list":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: dunya list <recordings|artists|concerts|works|raagas|taalas|instruments>")
			return 1
		}
		return cmdList(ctx, cfg, args[1])

	case "get":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: dunya get <recording|artist|concert|work|raaga|taala> <mbid>")
			return 1
		}
		return cmdGet(ctx, cfg, args[1], args[2])

	case "download":
		fs := flag.NewFlagSet("download", flag.ExitOnError)
		concert := fs.Bool("concert", false, "treat the MBID as a concert and download all its recordings")
		outDir := fs.String("o", ".", "directory to save into")
		fs.Parse(args[1:])
		if fs.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "usage: dunya download [-concert] [-o dir] <mbid>")
			return 1
		}
		return cmdDownload(ctx, cfg, fs.Arg(0), *outDir, *concert)

	case "pitch":
		fs := flag.NewFlagSet("pitch", flag.ExitOnError)
		outFile := fs.String("o", "", "output file (default: <input>.pitch.txt)")
		fs.Parse(args[1:])
		if fs.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "usage: dunya pitch [-o file] <audio.wav>")
			return 1
		}
		return cmdPitch(cfg, fs.Arg(0), *outFile)

	default:
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: dunya <command>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  list <kind>                      list records of a kind")
	fmt.Fprintln(os.Stderr, "  get <kind> <mbid>                fetch one record as JSON")
	fmt.Fprintln(os.Stderr, "  download [-concert] [-o dir] <mbid>   download recording audio")
	fmt.Fprintln(os.Stderr, "  pitch [-o file] <audio.wav>      extract the predominant melody")
}

func fail(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "dunya: "+format+"\n", args...)
}

func success(format string, args ...any) {
	color.New(color.FgGreen).Printf(format+"\n", args...)
}

func logger() *slog.Logger {
	return slog.Default()
}
