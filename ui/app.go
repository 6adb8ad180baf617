// Package ui provides the Fyne-based GUI for the Quran admin client.
package ui

import (
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rashidq/quranadmin/pkg/api"
	"github.com/rashidq/quranadmin/pkg/config"
	"github.com/rashidq/quranadmin/pkg/guard"
	"github.com/rashidq/quranadmin/pkg/rbac"
	"github.com/rashidq/quranadmin/pkg/refdata"
	"github.com/rashidq/quranadmin/pkg/session"
	"github.com/rashidq/quranadmin/pkg/version"
)

// Route identifies one navigable screen.
type Route int

const (
	RouteDashboard Route = iota
	RouteTopics
	RouteQuizzes
	RouteTranslations
	RouteUsers
)

// requirementFor declares each route's privilege requirement. The dashboard
// and content listings only need a login; translations and users are gated.
func requirementFor(r Route) guard.Requirement {
	switch r {
	case RouteTranslations:
		return guard.Require(rbac.PermManageTranslations)
	case RouteUsers:
		return guard.Require(rbac.PermManageUsers)
	default:
		return guard.None()
	}
}

func routeTitle(r Route) string {
	switch r {
	case RouteDashboard:
		return "Dashboard"
	case RouteTopics:
		return "Topics"
	case RouteQuizzes:
		return "Quizzes"
	case RouteTranslations:
		return "Translations"
	case RouteUsers:
		return "Users"
	default:
		return ""
	}
}

// App is the main GUI application.
type App struct {
	fyneApp fyne.App
	window  fyne.Window

	settings *config.Settings
	session  *session.Store
	client   *api.Client
	refdata  *refdata.Cache // nil when the local cache could not open

	content *fyne.Container
	status  *widget.Label

	route     Route
	prevRoute Route

	// teardown marks the mounted screen as gone so its in-flight responses
	// stop touching widgets after navigation
	teardown func()
}

// NewApp wires the client together: persisted credentials feed both the
// session store and the request authorizer, so a token cleared on disk stops
// being attached on the very next call.
func NewApp() *App {
	settings := config.Load()
	creds := session.DefaultCredentialsFile()
	client := api.NewClient(settings.APIURL, creds)

	a := &App{
		fyneApp:  app.NewWithID("com.rashidq.quranadmin"),
		settings: settings,
		session:  session.NewStore(creds, client),
		client:   client,
	}

	cache, err := refdata.Open(cachePath())
	if err != nil {
		slog.Warn("open refdata cache", "err", err)
	} else {
		a.refdata = cache
	}

	a.window = a.fyneApp.NewWindow("Quran Admin")
	a.window.Resize(fyne.NewSize(1000, 700))
	a.window.SetMaster()
	return a
}

func cachePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "quran-ref.db"
	}
	return filepath.Join(filepath.Dir(exe), "quran-ref.db")
}

// Run starts the GUI application (blocks).
func (a *App) Run() {
	a.content = container.NewStack()
	a.status = widget.NewLabel("")
	a.status.TextStyle = fyne.TextStyle{Italic: true}

	versionLabel := widget.NewLabel(version.String())
	versionLabel.TextStyle = fyne.TextStyle{Italic: true}
	versionLabel.Importance = widget.LowImportance
	statusBar := container.NewHBox(a.status, layout.NewSpacer(), versionLabel)

	a.window.SetContent(container.NewBorder(nil, statusBar, nil, nil, a.content))

	// Rehydrate off the UI thread, then route. Until restore completes the
	// guard holds every route in the loading state, so there is no
	// flash-redirect to the login screen for a persisted session.
	a.setContent(a.loadingView())
	go func() {
		a.session.Restore()
		fyne.Do(func() { a.navigate(RouteDashboard) })
		a.syncReferenceData()
	}()

	a.window.ShowAndRun()
}

// navigate re-evaluates the guard for the requested route and renders the
// matching state. It runs on every transition, not once: a logout while a
// screen is mounted drops straight back to the login view.
func (a *App) navigate(r Route) {
	snap := a.session.Snapshot()
	switch guard.Evaluate(snap, requirementFor(r)) {
	case guard.StateLoading:
		a.setContent(a.loadingView())
	case guard.StateUnauthenticated:
		// History replacement: the previous route is forgotten, so "back"
		// cannot re-enter the shell.
		a.route = RouteDashboard
		a.prevRoute = RouteDashboard
		a.setContent(a.loginView())
		a.status.SetText("")
	case guard.StateDenied:
		a.setContent(a.deniedView())
	case guard.StateAuthorized:
		a.prevRoute = a.route
		a.route = r
		body, teardown := a.shellView(r)
		a.setContent(body)
		a.teardown = teardown
		a.status.SetText("Signed in as " + snap.User.Username + " (" + snap.User.RoleName + ")")
	}
}

func (a *App) setContent(obj fyne.CanvasObject) {
	if a.teardown != nil {
		a.teardown()
		a.teardown = nil
	}
	a.content.Objects = []fyne.CanvasObject{obj}
	a.content.Refresh()
}

func (a *App) loadingView() fyne.CanvasObject {
	bar := widget.NewProgressBarInfinite()
	return container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Loading...", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		bar,
	))
}

// deniedView renders the access-denied state with a way back to the previous
// screen. This is a dead end by design, not a redirect.
func (a *App) deniedView() fyne.CanvasObject {
	back := widget.NewButtonWithIcon("Go Back", theme.NavigateBackIcon(), func() {
		a.navigate(a.prevRoute)
	})
	return container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Access Denied", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("You need superuser privileges to access this page."),
		back,
	))
}

// shellView renders the sidebar plus the requested screen. The returned
// teardown marks the screen gone once the shell navigates elsewhere.
func (a *App) shellView(r Route) (fyne.CanvasObject, func()) {
	var body fyne.CanvasObject
	var teardown func()
	switch r {
	case RouteDashboard:
		body = a.dashboardScreen()
	case RouteTopics:
		scr := newTopicsScreen(a)
		body = scr.view()
		teardown = func() { scr.gone = true }
	case RouteQuizzes:
		scr := newQuizzesScreen(a)
		body = scr.view()
		teardown = func() { scr.gone = true }
	case RouteTranslations:
		scr := newTranslationsScreen(a)
		body = scr.view()
		teardown = func() { scr.gone = true }
	case RouteUsers:
		scr := newUsersScreen(a)
		body = scr.view()
		teardown = func() { scr.gone = true }
	}

	nav := container.NewVBox(
		widget.NewLabelWithStyle("Quran Admin", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		a.navButton(RouteDashboard, theme.HomeIcon()),
		a.navButton(RouteTopics, theme.DocumentIcon()),
		a.navButton(RouteQuizzes, theme.ListIcon()),
		a.navButton(RouteTranslations, theme.FileTextIcon()),
		a.navButton(RouteUsers, theme.AccountIcon()),
		layout.NewSpacer(),
		widget.NewButtonWithIcon("Logout", theme.LogoutIcon(), a.logout),
	)

	split := container.NewHSplit(nav, body)
	split.SetOffset(0.18)
	return split, teardown
}

func (a *App) navButton(r Route, icon fyne.Resource) *widget.Button {
	btn := widget.NewButtonWithIcon(routeTitle(r), icon, func() {
		a.navigate(r)
	})
	if r == a.route {
		btn.Importance = widget.HighImportance
	}
	return btn
}

func (a *App) logout() {
	a.session.Logout()
	a.navigate(RouteDashboard)
}

// syncReferenceData refreshes the local surah cache after startup. Failures
// only cost offline validation, so they log and move on.
func (a *App) syncReferenceData() {
	if a.refdata == nil || !a.session.Snapshot().Authenticated() {
		return
	}
	ctx := contextForScreen()
	surahs, err := a.client.ListSurahs(ctx)
	if err != nil {
		slog.Warn("sync surah reference data", "err", err)
		return
	}
	if err := a.refdata.Sync(ctx, surahs); err != nil {
		slog.Warn("store surah reference data", "err", err)
	}
}

// showError surfaces a CRUD failure as a blocking dialog, on the UI thread.
func (a *App) showError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, a.window)
	})
}
