package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/output"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// settleDelay collapses the burst of events a spreadsheet save produces.
const settleDelay = 300 * time.Millisecond

func runWatch(cmd *cobra.Command, args []string) error {
	input, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}
	v, err := confcheck.NewValidator(opts)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace the file on save.
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", input, err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	defer signal.Stop(stop)

	out := cmd.OutOrStdout()
	revalidate(out, v, input)

	var timer <-chan time.Time
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != input || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("file changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			timer = time.After(settleDelay)
		case <-timer:
			timer = nil
			revalidate(out, v, input)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-stop:
			return nil
		}
	}
}

// revalidate runs one validation pass and prints the report. Failures are
// printed and the watch continues.
func revalidate(w io.Writer, v *confcheck.Validator, path string) {
	fmt.Fprintf(w, "\n== %s (%s)\n", filepath.Base(path), time.Now().Format(time.TimeOnly))
	wb, err := v.ValidateFile(path)
	if err != nil {
		fmt.Fprintln(w, "Error:", err)
		return
	}
	if err := output.RenderWorkbook(w, wb); err != nil {
		logger.Warn("failed to render report", zap.Error(err))
	}
}
