package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"portfolio0/db"
	"portfolio0/service"
)

type recordingNotifier struct {
	paths  []string
	tags   []string
	builds int
}

func (notifier *recordingNotifier) RevalidatePath(path string) bool {
	notifier.paths = append(notifier.paths, path)
	return true
}

func (notifier *recordingNotifier) RevalidateTag(tag string) bool {
	notifier.tags = append(notifier.tags, tag)
	return true
}

func (notifier *recordingNotifier) TriggerBuild() bool {
	notifier.builds++
	return true
}

// useTestServices points the commands at a fresh in-memory store for the
// duration of one test.
func useTestServices(t *testing.T) *service.Services {
	services := service.NewServices(hclog.NewNullLogger(), db.GetTestDataStore(), &recordingNotifier{})

	restore := getServices
	getServices = func() *service.Services {
		return services
	}
	t.Cleanup(func() {
		getServices = restore
	})

	return services
}

// captureConsole collects the colored console helpers' output.
func captureConsole(t *testing.T) *bytes.Buffer {
	buffer := &bytes.Buffer{}

	restore := color.Output
	color.Output = buffer
	t.Cleanup(func() {
		color.Output = restore
	})

	return buffer
}

func runCommand(t *testing.T, args ...string) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}
