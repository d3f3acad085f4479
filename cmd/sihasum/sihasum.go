// Command sihasum prints or checks SIHA-512 digests, in the style of sha512sum.
//
// Digest lines have the form "<hex> <mode><name>", where mode is ' ' for text mode or '*' for binary mode. Both modes
// hash the file's bytes unchanged; sihasum always writes text-mode lines.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sihahash/siha"
)

func main() {
	log := slog.New(slog.Default().Handler())
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, log))
}

func run(args []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) int {
	fs := flag.NewFlagSet("sihasum", flag.ContinueOnError)
	var (
		str   = fs.String("s", "", "hash the given string instead of files")
		check = fs.Bool("c", false, "read SIHA-512 digests from the files and check them")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	strSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "s" {
			strSet = true
		}
	})

	names := fs.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	switch {
	case strSet:
		d, err := siha.Sum512([]byte(*str))
		if err != nil {
			log.Error("failed to hash string", "err", err)
			return 1
		}
		_, _ = fmt.Fprintf(stdout, "%s  %s\n", d, *str)
		return 0
	case *check:
		return checkAll(names, stdin, stdout, log)
	default:
		return sumAll(names, stdin, stdout, log)
	}
}

func sumAll(names []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) int {
	status := 0
	for _, name := range names {
		d, err := sumFile(name, stdin)
		if err != nil {
			log.Error("failed to hash file", "file", name, "err", err)
			status = 1
			continue
		}
		_, _ = fmt.Fprintf(stdout, "%s  %s\n", d, name)
	}
	return status
}

func checkAll(names []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) int {
	status := 0
	for _, name := range names {
		f, closer, err := open(name, stdin)
		if err != nil {
			log.Error("failed to open checksum file", "file", name, "err", err)
			status = 1
			continue
		}

		if failed := checkLines(f, stdin, stdout, log); failed > 0 {
			log.Warn("computed checksums did not match", "file", name, "failed", failed)
			status = 1
		}
		_ = closer()
	}
	return status
}

func checkLines(r io.Reader, stdin io.Reader, stdout io.Writer, log *slog.Logger) int {
	failed := 0
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		want, name, err := parseLine(scanner.Text())
		if err != nil {
			log.Warn("improperly formatted line", "line", line, "err", err)
			failed++
			continue
		}

		got, err := sumFile(name, stdin)
		switch {
		case err != nil:
			log.Error("failed to hash file", "file", name, "err", err)
			_, _ = fmt.Fprintf(stdout, "%s: FAILED open or read\n", name)
			failed++
		case !got.Equal(want):
			_, _ = fmt.Fprintf(stdout, "%s: FAILED\n", name)
			failed++
		default:
			_, _ = fmt.Fprintf(stdout, "%s: OK\n", name)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Error("failed to read checksum file", "err", err)
		failed++
	}
	return failed
}

func parseLine(s string) (siha.Digest, string, error) {
	var d siha.Digest
	digest, rest, ok := strings.Cut(s, " ")
	if !ok || len(rest) < 2 || (rest[0] != ' ' && rest[0] != '*') {
		return d, "", errors.New("missing file name")
	}

	if err := d.UnmarshalText([]byte(digest)); err != nil {
		return d, "", err
	}
	return d, rest[1:], nil
}

func sumFile(name string, stdin io.Reader) (siha.Digest, error) {
	f, closer, err := open(name, stdin)
	if err != nil {
		return siha.Digest{}, err
	}
	defer func() {
		_ = closer()
	}()

	h := siha.New()
	if _, err := io.Copy(h, f); err != nil {
		return siha.Digest{}, err
	}
	return h.Digest()
}

func open(name string, stdin io.Reader) (io.Reader, func() error, error) {
	if name == "-" {
		return stdin, func() error { return nil }, nil
	}

	f, err := os.Open(name) //nolint:gosec // reading user-named files is the point
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
