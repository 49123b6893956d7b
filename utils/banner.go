package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var activeSpinner *spinner.Spinner

func DrawBanner() {
	figure.NewFigure("vm assessment", "", true).Print()
}

func StartSpinner(message string) {
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	activeSpinner.Suffix = " " + message
	activeSpinner.Start()
}

func StopSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
		activeSpinner = nil
	}
}
