package main

import (
	"fmt"
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/porthealth/porthealth-desktop/internal/api"
	"github.com/porthealth/porthealth-desktop/internal/chat"
	"github.com/porthealth/porthealth-desktop/internal/config"
	"github.com/porthealth/porthealth-desktop/internal/logging"
	"github.com/porthealth/porthealth-desktop/internal/model"
	"github.com/porthealth/porthealth-desktop/internal/platform"
	"github.com/porthealth/porthealth-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.porthealth.desktop"
	AppName = "PortHealth"
)

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	myApp := app.NewWithID(AppID)
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	settings.ApplyEnvironment(os.Getenv)

	writers := []io.Writer{os.Stderr}
	logFile, err := platform.OpenLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
	} else {
		defer logFile.Close()
		writers = append(writers, logFile)
	}
	logger := logging.New(settings.GetLogLevel(), writers...)
	logger.Info("starting", "app", AppName, "version", version, "api_url", settings.GetAPIURL())

	client := api.NewClient(settings.GetAPIURL(),
		api.WithTimeout(settings.GetRequestTimeout()),
		api.WithLogger(logger.With("component", "api")),
		api.WithUserAgent(fmt.Sprintf("%s-Desktop/%s", AppName, version)),
	)

	newTransport := func(socketURL string, session *model.Session) chat.Transport {
		return chat.NewClient(socketURL, session.Token,
			chat.WithUser(session.User),
			chat.WithLogger(logger.With("component", "chat")),
		)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	rootUI := ui.NewRootUI(myApp, myWindow, settings, client, newTransport, logger)
	myWindow.SetOnClosed(rootUI.Shutdown)

	myWindow.ShowAndRun()
	logger.Info("stopped")
}
