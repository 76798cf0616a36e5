package ui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/porthealth/porthealth-desktop/internal/model"
)

// PrescriptionsTab lists prescriptions; doctors also get the add form
type PrescriptionsTab struct {
	vc *viewContext

	prescriptions []model.Prescription
	table         *widget.Table

	patientIDEntry *widget.Entry
	medicineEntry  *widget.Entry
	dosageEntry    *widget.Entry
	startEntry     *widget.Entry
	endEntry       *widget.Entry
	doseTimesEntry *widget.Entry
	addBtn         *widget.Button

	content fyne.CanvasObject
}

// NewPrescriptionsTab creates the tab for the logged-in user's role
func NewPrescriptionsTab(vc *viewContext) *PrescriptionsTab {
	pt := &PrescriptionsTab{vc: vc}

	pt.table = newRecordTable(
		[]string{vc.text(KeyDate), vc.text(KeyMedicine), vc.text(KeyDosage), vc.counterpartHeader()},
		[]float32{TableDateColumnWidth + 60, TableNameColumnWidth, TableShortColumnWidth, TableNameColumnWidth},
		func() int { return len(pt.prescriptions) },
		pt.cell,
	)

	refreshBtn := widget.NewButton(vc.text(KeyRefresh), pt.Refresh)
	top := container.NewBorder(nil, nil, nil, refreshBtn, widget.NewLabelWithStyle(vc.text(KeyTabPrescriptions), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	var form fyne.CanvasObject
	if vc.role().IsDoctor() {
		form = pt.createForm()
	}
	pt.content = container.NewBorder(top, form, nil, nil, pt.table)
	return pt
}

func (pt *PrescriptionsTab) createForm() fyne.CanvasObject {
	pt.patientIDEntry = widget.NewEntry()
	pt.medicineEntry = widget.NewEntry()
	pt.dosageEntry = widget.NewEntry()
	pt.startEntry = widget.NewEntry()
	pt.startEntry.SetPlaceHolder(model.DateLayout)
	pt.endEntry = widget.NewEntry()
	pt.endEntry.SetPlaceHolder(model.DateLayout)
	pt.doseTimesEntry = widget.NewEntry()
	pt.doseTimesEntry.SetPlaceHolder("08:00, 20:00")

	pt.addBtn = widget.NewButton(pt.vc.text(KeyAddPrescription), pt.add)
	pt.addBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem(pt.vc.text(KeyPatientID), pt.patientIDEntry),
		widget.NewFormItem(pt.vc.text(KeyMedicine), pt.medicineEntry),
		widget.NewFormItem(pt.vc.text(KeyDosage), pt.dosageEntry),
		widget.NewFormItem(pt.vc.text(KeyStartDate), pt.startEntry),
		widget.NewFormItem(pt.vc.text(KeyEndDate), pt.endEntry),
		widget.NewFormItem(pt.vc.text(KeyDoseTimes), pt.doseTimesEntry),
	)
	return container.NewVBox(widget.NewSeparator(), form, pt.addBtn)
}

// Content returns the tab's root object
func (pt *PrescriptionsTab) Content() fyne.CanvasObject {
	return pt.content
}

// Refresh reloads the prescription list
func (pt *PrescriptionsTab) Refresh() {
	pt.vc.request(func(ctx context.Context) func() {
		items, err := pt.vc.svc.ListPrescriptions(ctx)
		return func() {
			if err != nil {
				pt.vc.fail(err)
				return
			}
			pt.prescriptions = items
			pt.table.Refresh()
		}
	})
}

func (pt *PrescriptionsTab) cell(row, col int) string {
	if row < 0 || row >= len(pt.prescriptions) {
		return ""
	}
	p := pt.prescriptions[row]
	switch col {
	case 0:
		return orDash(p.DisplayDate())
	case 1:
		return p.Medicine()
	case 2:
		return p.Dosage
	default:
		return orDash(p.Counterpart(pt.vc.role()))
	}
}

// add validates the form and creates the prescription
func (pt *PrescriptionsTab) add() {
	req := model.NewPrescription{
		Medicine:  strings.TrimSpace(pt.medicineEntry.Text),
		Dosage:    strings.TrimSpace(pt.dosageEntry.Text),
		StartDate: strings.TrimSpace(pt.startEntry.Text),
		EndDate:   strings.TrimSpace(pt.endEntry.Text),
		DoseTimes: model.ParseDoseTimes(pt.doseTimesEntry.Text),
	}
	if req.Medicine == "" || req.Dosage == "" {
		pt.vc.warn(KeyMedicineRequired)
		return
	}
	if raw := strings.TrimSpace(pt.patientIDEntry.Text); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			pt.vc.warn(KeyInvalidPatientID)
			return
		}
		req.PatientID = id
	}
	for _, date := range []string{req.StartDate, req.EndDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(model.DateLayout, date); err != nil {
			pt.vc.warn(KeyInvalidDate)
			return
		}
	}

	pt.addBtn.Disable()
	pt.vc.request(func(ctx context.Context) func() {
		err := pt.vc.svc.CreatePrescription(ctx, req)
		return func() {
			pt.addBtn.Enable()
			if err != nil {
				pt.vc.fail(err)
				return
			}
			pt.vc.info(KeyPrescriptionAdded)
			pt.clearForm()
			pt.Refresh()
		}
	})
}

func (pt *PrescriptionsTab) clearForm() {
	for _, entry := range []*widget.Entry{pt.patientIDEntry, pt.medicineEntry, pt.dosageEntry, pt.startEntry, pt.endEntry, pt.doseTimesEntry} {
		entry.SetText("")
	}
}
