package main

// Utility to list the PostgreSQL source files cited in comments, grouped by
// release tag, as `git diff` commands. Run the output in a clone of the
// Postgres repository to review upstream date/time and hashing changes
// since the cited release.
//
// go run .util/pglist.go [dir...]

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

//  https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/datetime.c
var pgRegex = regexp.MustCompile(`postgres/postgres/blob/([^/]+)/([^#\s]+)`)

func main() {
	roots := os.Args[1:]
	if len(roots) == 0 {
		roots = []string{"temporal", "cmd"}
	}

	cited := map[string]map[string]struct{}{}
	for _, root := range roots {
		must(filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || filepath.Ext(path) != ".go" {
				return err
			}
			return scan(path, cited)
		}))
	}

	fmt.Println("# Check out the next release tag in the Postgres repo and run these diffs:")
	tags := maps.Keys(cited)
	slices.Sort(tags)
	for _, tag := range tags {
		files := maps.Keys(cited[tag])
		slices.Sort(files)
		fmt.Printf("git diff %v -- %v\n", tag, strings.Join(files, " "))
	}
}

// scan records every Postgres source file cited in path by release tag.
func scan(path string, cited map[string]map[string]struct{}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		for _, match := range pgRegex.FindAllStringSubmatch(scanner.Text(), -1) {
			if cited[match[1]] == nil {
				cited[match[1]] = map[string]struct{}{}
			}
			cited[match[1]][match[2]] = struct{}{}
		}
	}
	return scanner.Err()
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
