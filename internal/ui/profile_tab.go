package ui

import (
	"context"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/porthealth/porthealth-desktop/internal/api"
	"github.com/porthealth/porthealth-desktop/internal/model"
)

// ProfileTab edits the user's profile, theme and (for patients) health info
type ProfileTab struct {
	vc *viewContext

	nameEntry  *widget.Entry
	emailEntry *widget.Entry
	roleLabel  *widget.Label
	darkCheck  *widget.Check

	ageEntry       *widget.Entry
	weightEntry    *widget.Entry
	allergiesEntry *widget.Entry
	chronicEntry   *widget.Entry

	saveBtn   *widget.Button
	logoutBtn *widget.Button

	onThemeChange func(dark bool)
	onSaved       func(*model.User)
	onLogout      func()

	content fyne.CanvasObject
}

// NewProfileTab creates the profile tab for the logged-in user
func NewProfileTab(vc *viewContext, onThemeChange func(bool), onSaved func(*model.User), onLogout func()) *ProfileTab {
	pt := &ProfileTab{vc: vc, onThemeChange: onThemeChange, onSaved: onSaved, onLogout: onLogout}

	pt.nameEntry = widget.NewEntry()
	pt.emailEntry = widget.NewEntry()
	pt.roleLabel = widget.NewLabel("")
	pt.darkCheck = widget.NewCheck(vc.text(KeyDarkMode), func(dark bool) {
		if pt.onThemeChange != nil {
			pt.onThemeChange(dark)
		}
	})

	pt.saveBtn = widget.NewButton(vc.text(KeySave), pt.save)
	pt.saveBtn.Importance = widget.HighImportance
	pt.logoutBtn = widget.NewButton(vc.text(KeyLogout), func() {
		if pt.onLogout != nil {
			pt.onLogout()
		}
	})

	form := widget.NewForm(
		widget.NewFormItem(vc.text(KeyName), pt.nameEntry),
		widget.NewFormItem(vc.text(KeyEmail), pt.emailEntry),
	)
	items := []fyne.CanvasObject{form, pt.roleLabel, pt.darkCheck}

	if vc.role().IsPatient() {
		pt.ageEntry = widget.NewEntry()
		pt.weightEntry = widget.NewEntry()
		pt.allergiesEntry = widget.NewMultiLineEntry()
		pt.chronicEntry = widget.NewMultiLineEntry()

		health := widget.NewForm(
			widget.NewFormItem(vc.text(KeyAge), pt.ageEntry),
			widget.NewFormItem(vc.text(KeyWeight), pt.weightEntry),
			widget.NewFormItem(vc.text(KeyAllergies), pt.allergiesEntry),
			widget.NewFormItem(vc.text(KeyChronicDiseases), pt.chronicEntry),
		)
		items = append(items,
			widget.NewSeparator(),
			widget.NewLabelWithStyle(vc.text(KeyHealthInfo), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			health,
		)
	}

	items = append(items, container.NewHBox(layout.NewSpacer(), pt.logoutBtn, pt.saveBtn))
	pt.content = container.NewVScroll(container.NewVBox(items...))

	pt.Load()
	return pt
}

// Content returns the tab's root object
func (pt *ProfileTab) Content() fyne.CanvasObject {
	return pt.content
}

// Load copies the session user into the form
func (pt *ProfileTab) Load() {
	user := pt.vc.user
	if user == nil {
		return
	}
	pt.nameEntry.SetText(user.Name)
	pt.emailEntry.SetText(user.Email)
	pt.roleLabel.SetText(pt.vc.loc.Format(KeyRoleFormat, pt.vc.roleTitle(user.Role)))
	pt.darkCheck.Checked = user.IsDarkTheme()
	pt.darkCheck.Refresh()

	if pt.ageEntry != nil {
		pt.loadHealthInfo(user.ID)
	}
}

func (pt *ProfileTab) loadHealthInfo(userID int64) {
	pt.vc.request(func(ctx context.Context) func() {
		info, err := pt.vc.svc.GetPatientInfo(ctx, userID)
		return func() {
			if err != nil {
				pt.vc.logger.Warn("load health info failed", "error", err)
				return
			}
			pt.setHealthInfo(info)
		}
	})
}

func (pt *ProfileTab) setHealthInfo(info *model.PatientInfo) {
	if info == nil {
		return
	}
	pt.ageEntry.SetText("")
	if info.Age > 0 {
		pt.ageEntry.SetText(strconv.Itoa(info.Age))
	}
	pt.weightEntry.SetText("")
	if info.Weight > 0 {
		pt.weightEntry.SetText(strconv.FormatFloat(info.Weight, 'f', -1, 64))
	}
	pt.allergiesEntry.SetText(info.Allergies)
	pt.chronicEntry.SetText(info.ChronicDiseases)
}

// healthInfo reads the health form; ok is false when a number is malformed
func (pt *ProfileTab) healthInfo() (info model.PatientInfo, ok bool) {
	if pt.ageEntry == nil {
		return info, true
	}
	if raw := strings.TrimSpace(pt.ageEntry.Text); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			return info, false
		}
		info.Age = age
	}
	if raw := strings.TrimSpace(strings.ReplaceAll(pt.weightEntry.Text, ",", ".")); raw != "" {
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil || weight < 0 {
			return info, false
		}
		info.Weight = weight
	}
	info.Allergies = strings.TrimSpace(pt.allergiesEntry.Text)
	info.ChronicDiseases = strings.TrimSpace(pt.chronicEntry.Text)
	return info, true
}

// save sends the profile, then the health info when any was entered
func (pt *ProfileTab) save() {
	theme := model.ThemeLight
	if pt.darkCheck.Checked {
		theme = model.ThemeDark
	}
	update := api.ProfileUpdate{
		Name:  strings.TrimSpace(pt.nameEntry.Text),
		Email: strings.TrimSpace(pt.emailEntry.Text),
		Theme: theme,
	}
	if update.Name == "" || update.Email == "" {
		pt.vc.warn(KeyNameEmailRequired)
		return
	}
	info, ok := pt.healthInfo()
	if !ok {
		pt.vc.warn(KeyInvalidNumber)
		return
	}
	saveInfo := pt.ageEntry != nil && !info.IsEmpty()

	pt.saveBtn.Disable()
	pt.vc.request(func(ctx context.Context) func() {
		user, err := pt.vc.svc.UpdateProfile(ctx, update)
		if err == nil && saveInfo {
			_, err = pt.vc.svc.UpdatePatientInfo(ctx, info)
		}
		return func() {
			pt.saveBtn.Enable()
			if user != nil && pt.vc.user != nil {
				pt.vc.user.Merge(*user)
				if pt.onSaved != nil {
					pt.onSaved(pt.vc.user)
				}
			}
			if err != nil {
				pt.vc.fail(err)
				return
			}
			pt.vc.info(KeyProfileUpdated)
		}
	})
}
