package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/porthealth/porthealth-desktop/internal/api"
	"github.com/porthealth/porthealth-desktop/internal/chat"
	"github.com/porthealth/porthealth-desktop/internal/config"
	"github.com/porthealth/porthealth-desktop/internal/logging"
	"github.com/porthealth/porthealth-desktop/internal/model"
	"github.com/porthealth/porthealth-desktop/internal/platform"
)

// TransportFactory creates the chat connection for a session
type TransportFactory func(socketURL string, session *model.Session) chat.Transport

// RootUI represents the main UI structure
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	notifier     Notifier
	logger       *logging.Logger
	svc          api.Service
	newTransport TransportFactory
	vc           *viewContext

	session     *model.Session
	transport   chat.Transport
	expiryTimer *time.Timer

	loginView        *LoginView
	tabs             *container.AppTabs
	chatItem         *container.TabItem
	appointmentsTab  *AppointmentsTab
	prescriptionsTab *PrescriptionsTab
	chatTab          *ChatTab
	profileTab       *ProfileTab
	patientsTab      *PatientsTab

	// Notification bar above the tabs
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSeq       int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(app fyne.App, window fyne.Window, settings *config.Settings, svc api.Service, newTransport TransportFactory, logger *logging.Logger) *RootUI {
	if logger == nil {
		logger = logging.Default()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	notifier := NewDialogNotifier(window)

	ui := &RootUI{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		notifier:     notifier,
		logger:       logger,
		svc:          svc,
		newTransport: newTransport,
		vc:           newViewContext(window, svc, notifier, localization, logger),
	}
	ui.vc.timeout = settings.GetRequestTimeout()
	ui.vc.onUnauthorized = ui.expireSession

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.applyTheme(settings.GetTheme() == model.ThemeDark)
	ui.setupUI()
	return ui
}

// setupUI creates the menu and shows the login screen
func (ui *RootUI) setupUI() {
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, closeBtn, ui.notificationLabel)
	ui.notificationContainer.Hide()

	ui.createMenu()
	ui.showLogin()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)
	logsItem := fyne.NewMenuItem(l.GetText(KeyShowLogs), ui.onShowLogs)
	logoutItem := fyne.NewMenuItem(l.GetText(KeyLogout), ui.Logout)
	logoutItem.Disabled = ui.session == nil
	quitItem := fyne.NewMenuItem(l.GetText(KeyQuit), ui.onQuit)
	quitItem.IsQuit = true

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), settingsItem, logsItem, fyne.NewMenuItemSeparator(), logoutItem, quitItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// showLogin replaces the window content with the login screen
func (ui *RootUI) showLogin() {
	ui.loginView = NewLoginView(ui.vc, ui.settings.GetLastEmail(), ui.onLogin, ui.onShowSignup)
	ui.window.SetContent(ui.loginView.Content())
}

func (ui *RootUI) onShowSignup() {
	NewSignupDialog(ui.vc, func(email string) {
		if ui.loginView != nil {
			ui.loginView.SetEmail(email)
		}
	}).Show()
}

// onLogin swaps to the main view for a fresh session
func (ui *RootUI) onLogin(session *model.Session) {
	if !session.Valid() {
		ui.notifier.Warning(ui.localization.GetText(KeyLoginTitle), ui.localization.GetText(KeyFillAllFields))
		return
	}
	if api.TokenExpired(session.Token, time.Now()) {
		ui.notifier.Warning(ui.localization.GetText(KeyLoginTitle), ui.localization.GetText(KeySessionExpired))
		return
	}

	ui.session = session
	ui.vc.user = session.User
	ui.svc.SetToken(session.Token)
	ui.settings.SetLastEmail(session.User.Email)
	ui.applyTheme(session.User.IsDarkTheme())

	ui.logger.Info("session started", "user_id", session.User.ID, "role", string(session.User.Role))

	ui.showMain()
	ui.startChat()
	ui.scheduleExpiry(session)
	ui.createMenu()
}

// showMain builds one tab per resource for the session's role
func (ui *RootUI) showMain() {
	l := ui.localization
	vc := ui.vc

	ui.appointmentsTab = NewAppointmentsTab(vc)
	ui.prescriptionsTab = NewPrescriptionsTab(vc)
	ui.chatTab = NewChatTab(vc, ui.transport)
	ui.profileTab = NewProfileTab(vc, ui.applyTheme, ui.onProfileSaved, ui.Logout)

	ui.chatItem = container.NewTabItem(l.GetText(KeyTabChat), ui.chatTab.Content())
	ui.tabs = container.NewAppTabs(
		container.NewTabItem(l.GetText(KeyTabAppointments), ui.appointmentsTab.Content()),
		container.NewTabItem(l.GetText(KeyTabPrescriptions), ui.prescriptionsTab.Content()),
		ui.chatItem,
	)

	ui.patientsTab = nil
	if vc.role().IsDoctor() {
		ui.patientsTab = NewPatientsTab(vc)
		ui.tabs.Append(container.NewTabItem(l.GetText(KeyTabPatients), ui.patientsTab.Content()))
	}
	ui.tabs.Append(container.NewTabItem(l.GetText(KeyTabProfile), ui.profileTab.Content()))
	ui.tabs.OnSelected = func(item *container.TabItem) {
		if item == ui.chatItem {
			ui.hideNotification()
		}
	}

	ui.window.SetContent(container.NewBorder(ui.notificationContainer, nil, nil, nil, ui.tabs))

	ui.appointmentsTab.Refresh()
	ui.prescriptionsTab.Refresh()
	ui.chatTab.Refresh()
	if ui.patientsTab != nil {
		ui.patientsTab.Refresh()
	}
}

// startChat opens the socket for the current session
func (ui *RootUI) startChat() {
	if ui.newTransport == nil || ui.session == nil {
		return
	}

	transport := ui.newTransport(ui.settings.GetSocketURL(), ui.session)
	transport.SetMessageCallback(func(m model.ChatMessage) {
		ui.vc.main(func() { ui.onChatMessage(m) })
	})
	transport.SetReminderCallback(func(r model.Reminder) {
		ui.vc.main(func() { ui.onReminder(r) })
	})
	transport.SetStatusCallback(func(status model.ConnectionStatus) {
		ui.vc.main(func() {
			if ui.chatTab != nil {
				ui.chatTab.SetStatus(status)
			}
		})
	})

	if err := transport.Start(context.Background()); err != nil {
		ui.logger.Warn("chat not started", "error", err)
		return
	}
	ui.transport = transport
	ui.chatTab.SetTransport(transport)
}

func (ui *RootUI) onChatMessage(m model.ChatMessage) {
	if ui.chatTab == nil {
		return
	}
	ui.chatTab.AppendMessage(m)
	if ui.tabs != nil && ui.tabs.Selected() != ui.chatItem {
		sender := m.SenderName
		if sender == "" {
			sender = model.DefaultSenderName
		}
		ui.showNotification(fmt.Sprintf(ChatLineFormat, sender, m.Content))
	}
}

func (ui *RootUI) onReminder(r model.Reminder) {
	if ui.chatTab != nil {
		ui.chatTab.AppendReminder(r)
	}
	ui.showNotification(IconReminder + " " + r.Message)
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyReminder),
		Content: r.Message,
	})
}

// scheduleExpiry logs the user out when the session token expires
func (ui *RootUI) scheduleExpiry(session *model.Session) {
	claims, err := api.TokenClaims(session.Token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return
	}
	ui.expiryTimer = time.AfterFunc(time.Until(claims.ExpiresAt), func() {
		ui.vc.main(func() {
			if ui.session != session {
				return
			}
			ui.expireSession()
		})
	})
}

// expireSession logs out and tells the user to log in again
func (ui *RootUI) expireSession() {
	if ui.session == nil {
		return
	}
	ui.logger.Info("session expired", "user_id", ui.session.User.ID)
	ui.Logout()
	ui.notifier.Warning(ui.localization.GetText(KeyLoginTitle), ui.localization.GetText(KeySessionExpired))
}

// Logout ends the session and returns to the login screen
func (ui *RootUI) Logout() {
	if ui.session == nil {
		return
	}

	if ui.expiryTimer != nil {
		ui.expiryTimer.Stop()
		ui.expiryTimer = nil
	}
	if ui.transport != nil {
		ui.transport.Stop()
		ui.transport = nil
	}

	ui.logger.Info("session ended", "user_id", ui.session.User.ID)
	ui.svc.SetToken("")
	ui.session = nil
	ui.vc.user = nil
	ui.tabs = nil
	ui.chatItem = nil
	ui.appointmentsTab, ui.prescriptionsTab, ui.chatTab, ui.profileTab, ui.patientsTab = nil, nil, nil, nil, nil

	ui.hideNotification()
	ui.createMenu()
	ui.showLogin()
}

// Shutdown releases the session's resources; called when the window closes
func (ui *RootUI) Shutdown() {
	if ui.expiryTimer != nil {
		ui.expiryTimer.Stop()
	}
	if ui.transport != nil {
		ui.transport.Stop()
	}
}

// Session returns the current session, nil when logged out
func (ui *RootUI) Session() *model.Session {
	return ui.session
}

func (ui *RootUI) onProfileSaved(user *model.User) {
	ui.applyTheme(user.IsDarkTheme())
}

// applyTheme switches the app theme and remembers the choice locally
func (ui *RootUI) applyTheme(dark bool) {
	theme := model.ThemeLight
	if dark {
		theme = model.ThemeDark
	}
	ui.settings.SetTheme(theme)
	ui.app.Settings().SetTheme(NewCompactTheme(dark))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the current screen with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()

	if ui.session == nil {
		ui.showLogin()
		return
	}
	ui.showMain()
	if ui.transport != nil {
		ui.chatTab.SetTransport(ui.transport)
		ui.chatTab.SetStatus(ui.transport.Status())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.notifier, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.vc.timeout = ui.settings.GetRequestTimeout()
	if client, ok := ui.svc.(*api.Client); ok {
		client.SetBaseURL(ui.settings.GetAPIURL())
		client.SetTimeout(ui.vc.timeout)
	}
	if ui.localization.GetCurrentLanguage() != ui.settings.GetLanguage() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	}
	if ui.session != nil {
		ui.showNotification(ui.localization.GetText(KeyReconnectOnNextOpen))
	}
}

// onShowLogs reveals the log file in the system file manager
func (ui *RootUI) onShowLogs() {
	dir, err := platform.GetLogDirectory()
	if err == nil {
		err = platform.OpenFileInManager(filepath.Join(dir, platform.LogFileName))
	}
	if err != nil {
		ui.logger.Warn("reveal log file failed", "error", err)
		ui.notifier.Error(ui.localization.GetText(KeyError), ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error())
	}
}

func (ui *RootUI) onQuit() {
	ui.Shutdown()
	ui.app.Quit()
}

// showNotification displays a message in the bar above the tabs; it hides
// itself after NotificationAutoHide unless replaced.
func (ui *RootUI) showNotification(message string) {
	ui.notificationSeq++
	seq := ui.notificationSeq

	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	time.AfterFunc(NotificationAutoHide, func() {
		ui.vc.main(func() {
			if ui.notificationSeq == seq {
				ui.hideNotification()
			}
		})
	})
}

// hideNotification hides the notification bar
func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}
