package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/config"
	"github.com/shiftdesk/shiftdesk/internal/realtime"
	"github.com/shiftdesk/shiftdesk/internal/session"
	"github.com/shiftdesk/shiftdesk/internal/store"
	"github.com/shiftdesk/shiftdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.shiftdesk.app"
	AppName = "ShiftDesk"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	env := config.LoadEnv()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	// Initialize services
	sess := session.NewStore(myApp)
	client := api.NewClient(env.APIBaseURL, sess)
	st := store.New(client, sess)
	rt := realtime.NewClient(realtime.Options{BaseURL: env.WSBaseURL})

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, st, rt)
	client.SetUnauthorizedHandler(root.HandleUnauthorized)
	root.Start()

	// Show and run
	myWindow.ShowAndRun()

	// Window closed: drop the realtime channel cleanly
	rt.Disconnect()
}
