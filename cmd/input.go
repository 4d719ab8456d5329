package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	axerrors "github.com/conneroisu/axname/internal/errors"
	"github.com/conneroisu/axname/internal/watcher"
)

const stdinName = "-"

// document is one HTML input of a command.
type document struct {
	Name    string
	Content string
}

// expandInputs turns directory arguments into the HTML files below them.
// Files and "-" are kept as given.
func expandInputs(args []string, extensions []string) ([]string, error) {
	filter := watcher.ExtensionFilter(extensions...)

	var inputs []string
	for _, arg := range args {
		if arg == stdinName {
			inputs = append(inputs, arg)
			continue
		}

		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && ignoredDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if filter(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, axerrors.WrapIO(err, axerrors.ErrCodeReadInput, "cannot list directory").WithFile(arg)
		}
		sort.Strings(found)
		inputs = append(inputs, found...)
	}

	return inputs, nil
}

func ignoredDir(name string) bool {
	if appConfig == nil {
		return false
	}
	for _, ignore := range appConfig.Watch.Ignore {
		if name == ignore {
			return true
		}
	}
	return false
}

// readDocument reads a file, or standard input for "-".
func readDocument(cmd *cobra.Command, path string) (document, error) {
	if path == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return document{}, axerrors.WrapIO(err, axerrors.ErrCodeReadInput, "cannot read standard input")
		}
		return document{Name: "<stdin>", Content: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		code := axerrors.ErrCodeReadInput
		if errors.Is(err, fs.ErrNotExist) {
			code = axerrors.ErrCodeFileNotFound
		}
		return document{}, axerrors.WrapIO(err, code, "cannot read input").WithFile(path)
	}
	return document{Name: path, Content: string(data)}, nil
}

// forEachDocument runs fn over every input. Failures are logged and
// collected so that one bad file does not stop the others; the joined
// failures are returned at the end.
func forEachDocument(ctx context.Context, cmd *cobra.Command, args []string, fn func(doc document) error) error {
	inputs, err := expandInputs(args, appConfig.Watch.Extensions)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return axerrors.NewInputError(axerrors.ErrCodeReadInput, "no HTML files found")
	}

	collector := axerrors.NewErrorCollector()
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		doc, err := readDocument(cmd, input)
		if err == nil {
			err = fn(doc)
		}
		if err != nil {
			axerrors.Handle(ctx, appLogger, err)
			collector.Add(input, err)
		}
	}

	return collector.Err()
}
