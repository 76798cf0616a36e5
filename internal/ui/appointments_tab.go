package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// AppointmentsTab lists appointments. Patients book new ones, doctors
// reschedule existing ones.
type AppointmentsTab struct {
	vc *viewContext

	appointments []model.Appointment
	table        *widget.Table
	selected     int

	// patient form
	doctors       map[string]model.Contact
	takenSlots    []string
	doctorSelect  *widget.Select
	dateTimeEntry *widget.Entry
	reasonEntry   *widget.Entry
	takenLabel    *widget.Label
	scheduleBtn   *widget.Button

	// doctor form
	rescheduleEntry *widget.Entry
	updateBtn       *widget.Button

	content fyne.CanvasObject
}

// NewAppointmentsTab creates the tab for the logged-in user's role
func NewAppointmentsTab(vc *viewContext) *AppointmentsTab {
	at := &AppointmentsTab{vc: vc, selected: -1}

	at.table = newRecordTable(
		[]string{vc.text(KeyDateTime), vc.counterpartHeader(), vc.text(KeyReason)},
		[]float32{TableDateColumnWidth, TableNameColumnWidth, TableReasonColumnWidth},
		func() int { return len(at.appointments) },
		at.cell,
	)
	at.table.OnSelected = at.onSelected

	refreshBtn := widget.NewButton(vc.text(KeyRefresh), at.Refresh)

	var form fyne.CanvasObject
	if vc.role().IsDoctor() {
		form = at.createDoctorForm()
	} else {
		form = at.createPatientForm()
	}

	top := container.NewBorder(nil, nil, nil, refreshBtn, widget.NewLabelWithStyle(vc.text(KeyTabAppointments), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	at.content = container.NewBorder(top, form, nil, nil, at.table)
	return at
}

func (at *AppointmentsTab) createPatientForm() fyne.CanvasObject {
	at.doctorSelect = widget.NewSelect(nil, func(string) { at.onDoctorChanged() })
	at.doctorSelect.PlaceHolder = at.vc.text(KeySelectDoctorHint)

	at.dateTimeEntry = widget.NewEntry()
	at.dateTimeEntry.SetPlaceHolder(at.vc.text(KeyDateTimeHint))

	at.reasonEntry = widget.NewEntry()
	at.reasonEntry.SetPlaceHolder(at.vc.text(KeyReason))

	at.takenLabel = widget.NewLabel("")
	at.takenLabel.Wrapping = fyne.TextWrapWord

	at.scheduleBtn = widget.NewButton(at.vc.text(KeySchedule), at.schedule)
	at.scheduleBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem(at.vc.text(KeyDoctor), at.doctorSelect),
		widget.NewFormItem(at.vc.text(KeyDateTime), at.dateTimeEntry),
		widget.NewFormItem(at.vc.text(KeyReason), at.reasonEntry),
	)
	return container.NewVBox(widget.NewSeparator(), form, at.takenLabel, at.scheduleBtn)
}

func (at *AppointmentsTab) createDoctorForm() fyne.CanvasObject {
	at.rescheduleEntry = widget.NewEntry()
	at.rescheduleEntry.SetPlaceHolder(at.vc.text(KeyDateTimeHint))

	at.updateBtn = widget.NewButton(at.vc.text(KeyUpdate), at.update)
	at.updateBtn.Importance = widget.HighImportance

	form := widget.NewForm(widget.NewFormItem(at.vc.text(KeyNewDateTime), at.rescheduleEntry))
	return container.NewVBox(widget.NewSeparator(), form, at.updateBtn)
}

// Content returns the tab's root object
func (at *AppointmentsTab) Content() fyne.CanvasObject {
	return at.content
}

// Refresh reloads appointments, and the doctor list for patients
func (at *AppointmentsTab) Refresh() {
	at.vc.request(func(ctx context.Context) func() {
		appointments, err := at.vc.svc.ListAppointments(ctx)
		return func() {
			if err != nil {
				at.vc.fail(err)
				return
			}
			at.appointments = appointments
			at.selected = -1
			at.table.UnselectAll()
			at.table.Refresh()
		}
	})

	if at.doctorSelect != nil {
		at.loadDoctors()
	}
}

func (at *AppointmentsTab) loadDoctors() {
	at.vc.request(func(ctx context.Context) func() {
		doctors, err := at.vc.svc.ListDoctors(ctx)
		return func() {
			if err != nil {
				at.vc.fail(err)
				return
			}
			at.setDoctors(doctors)
		}
	})
}

func (at *AppointmentsTab) setDoctors(doctors []model.Contact) {
	at.doctors = make(map[string]model.Contact, len(doctors))
	if len(doctors) == 0 {
		at.doctorSelect.Options = nil
		at.doctorSelect.ClearSelected()
		at.doctorSelect.PlaceHolder = at.vc.text(KeyNoDoctors)
		at.doctorSelect.Disable()
		at.doctorSelect.Refresh()
		return
	}

	options := doctorLabels(doctors, at.vc.text(KeyDoctor))
	for i, label := range options {
		at.doctors[label] = doctors[i]
	}
	if _, ok := at.doctors[at.doctorSelect.Selected]; !ok {
		at.doctorSelect.ClearSelected()
	}
	at.doctorSelect.PlaceHolder = at.vc.text(KeySelectDoctorHint)
	at.doctorSelect.Options = options
	at.doctorSelect.Enable()
	at.doctorSelect.Refresh()
}

func (at *AppointmentsTab) cell(row, col int) string {
	if row < 0 || row >= len(at.appointments) {
		return ""
	}
	a := at.appointments[row]
	switch col {
	case 0:
		return a.DisplayDateTime()
	case 1:
		return orDash(a.Counterpart(at.vc.role()))
	default:
		return a.Reason
	}
}

func (at *AppointmentsTab) onSelected(id widget.TableCellID) {
	if id.Row < 0 || id.Row >= len(at.appointments) {
		return
	}
	at.selected = id.Row
	if at.rescheduleEntry != nil {
		at.rescheduleEntry.SetText(at.appointments[id.Row].DisplayDateTime())
	}
}

// doctorLabels names each doctor for the select. Repeated or missing names
// get the doctor's ID appended so every label maps to one doctor.
func doctorLabels(doctors []model.Contact, fallback string) []string {
	counts := make(map[string]int, len(doctors))
	for _, d := range doctors {
		counts[d.DisplayName(fallback)]++
	}
	labels := make([]string, len(doctors))
	for i, d := range doctors {
		name := d.DisplayName(fallback)
		if counts[name] > 1 {
			name = fmt.Sprintf("%s (#%d)", name, d.ID)
		}
		labels[i] = name
	}
	return labels
}

// selectedDoctor returns the doctor picked in the select, if any
func (at *AppointmentsTab) selectedDoctor() (model.Contact, bool) {
	doctor, ok := at.doctors[at.doctorSelect.Selected]
	return doctor, ok
}

func (at *AppointmentsTab) onDoctorChanged() {
	doctor, ok := at.selectedDoctor()
	if !ok {
		return
	}
	at.takenSlots = nil
	at.takenLabel.SetText("")

	at.vc.request(func(ctx context.Context) func() {
		slots, err := at.vc.svc.TakenSlots(ctx, doctor.ID)
		return func() {
			if current, ok := at.selectedDoctor(); !ok || current.ID != doctor.ID {
				return
			}
			if err != nil {
				at.vc.logger.Warn("load taken slots failed", "doctor_id", doctor.ID, "error", err)
				return
			}
			at.setTakenSlots(slots)
		}
	})
}

func (at *AppointmentsTab) setTakenSlots(slots []string) {
	at.takenSlots = slots
	if len(slots) == 0 {
		at.takenLabel.SetText(at.vc.text(KeyNoTakenSlots))
		return
	}
	at.takenLabel.SetText(at.vc.text(KeyTakenSlots) + ":\n" + model.FormatTakenSlots(slots))
}

// schedule books the appointment described by the patient form
func (at *AppointmentsTab) schedule() {
	doctor, ok := at.selectedDoctor()
	if !ok {
		at.vc.warn(KeySelectDoctor)
		return
	}
	when, ok := model.ParseDateTime(at.dateTimeEntry.Text)
	if !ok {
		at.vc.warn(KeyInvalidDateTime)
		return
	}
	reason := strings.TrimSpace(at.reasonEntry.Text)
	if reason == "" {
		at.vc.warn(KeyEnterReason)
		return
	}
	if model.IsSlotTaken(when, at.takenSlots) {
		at.vc.warn(KeySlotTaken)
		return
	}

	req := model.NewAppointment{DoctorID: doctor.ID, DateTime: model.FormatDateTime(when), Reason: reason}
	at.scheduleBtn.Disable()
	at.vc.request(func(ctx context.Context) func() {
		err := at.vc.svc.CreateAppointment(ctx, req)
		return func() {
			at.scheduleBtn.Enable()
			if err != nil {
				at.vc.fail(err)
				return
			}
			at.vc.info(KeyAppointmentBooked)
			at.reasonEntry.SetText("")
			at.dateTimeEntry.SetText("")
			at.Refresh()
			at.onDoctorChanged()
		}
	})
}

// update moves the selected appointment to the date in the reschedule entry
func (at *AppointmentsTab) update() {
	if at.selected < 0 || at.selected >= len(at.appointments) {
		at.vc.warn(KeySelectAppointment)
		return
	}
	when, ok := model.ParseDateTime(at.rescheduleEntry.Text)
	if !ok {
		at.vc.warn(KeyInvalidDateTime)
		return
	}

	id := at.appointments[at.selected].ID
	at.updateBtn.Disable()
	at.vc.request(func(ctx context.Context) func() {
		err := at.vc.svc.RescheduleAppointment(ctx, id, model.FormatDateTime(when))
		return func() {
			at.updateBtn.Enable()
			if err != nil {
				at.vc.fail(err)
				return
			}
			at.vc.info(KeyAppointmentUpdated)
			at.rescheduleEntry.SetText("")
			at.Refresh()
		}
	})
}
