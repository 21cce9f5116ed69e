package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/media-editor/internal/config"
	"github.com/ytget/media-editor/internal/edit"
	"github.com/ytget/media-editor/internal/media"
	"github.com/ytget/media-editor/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.media-editor"
	AppName = "Media Editor"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "media-editor: %v\n", err)
		os.Exit(1)
	}
	logger := env.NewLogger()
	slog.SetDefault(logger)
	logger.Info("starting", slog.String("version", version), slog.String("env", env.String()))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewEditorTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.Debug("app icon not loaded", slog.Any("error", err))
	}

	// Initialize services
	settings := config.NewSettings(myApp, env)
	processor := media.NewFFmpegProcessor(settings.GetFFmpegPath(), settings.GetFFprobePath(), logger)
	editSvc := edit.NewService(processor, logger)

	rootUI := ui.NewRootUI(myWindow, editSvc, settings, logger)
	rootUI.SetSettingsSavedCallback(func() {
		processor.SetToolPaths(settings.GetFFmpegPath(), settings.GetFFprobePath())
		rootUI.CheckTools()
	})
	rootUI.CheckTools()

	myWindow.ShowAndRun()
}
