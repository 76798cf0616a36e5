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

// PatientsTab lets a doctor browse patients and their health records
type PatientsTab struct {
	vc *viewContext

	patients     []model.Patient
	list         *widget.List
	detailsLabel *widget.Label
	selectedID   int64

	content fyne.CanvasObject
}

// NewPatientsTab creates the doctor's patient browser
func NewPatientsTab(vc *viewContext) *PatientsTab {
	pt := &PatientsTab{vc: vc}

	pt.list = widget.NewList(
		func() int { return len(pt.patients) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(pt.patients) {
				obj.(*widget.Label).SetText(pt.patients[id].Name)
			}
		},
	)
	pt.list.OnSelected = pt.selectPatient

	pt.detailsLabel = widget.NewLabel(vc.text(KeySelectPatient))
	pt.detailsLabel.Wrapping = fyne.TextWrapWord

	refreshBtn := widget.NewButton(vc.text(KeyRefresh), pt.Refresh)
	left := container.NewBorder(nil, refreshBtn, nil, nil, pt.list)
	right := container.NewBorder(
		widget.NewLabelWithStyle(vc.text(KeyPatientDetails), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(pt.detailsLabel),
	)

	split := container.NewHSplit(left, right)
	split.SetOffset(0.3)
	pt.content = split
	return pt
}

// Content returns the tab's root object
func (pt *PatientsTab) Content() fyne.CanvasObject {
	return pt.content
}

// Refresh reloads the patient list
func (pt *PatientsTab) Refresh() {
	pt.vc.request(func(ctx context.Context) func() {
		patients, err := pt.vc.svc.ListPatients(ctx)
		return func() {
			if err != nil {
				pt.vc.fail(err)
				return
			}
			pt.patients = patients
			pt.selectedID = 0
			pt.list.UnselectAll()
			pt.list.Refresh()
			pt.detailsLabel.SetText(pt.vc.text(KeySelectPatient))
		}
	})
}

func (pt *PatientsTab) selectPatient(id widget.ListItemID) {
	if id < 0 || id >= len(pt.patients) {
		return
	}
	patientID := pt.patients[id].ID
	pt.selectedID = patientID

	pt.vc.request(func(ctx context.Context) func() {
		patient, err := pt.vc.svc.GetPatient(ctx, patientID)
		var info *model.PatientInfo
		if err == nil {
			info, err = pt.vc.svc.GetPatientInfo(ctx, patientID)
		}
		return func() {
			if pt.selectedID != patientID {
				return
			}
			if err != nil {
				pt.vc.fail(err)
				return
			}
			pt.detailsLabel.SetText(pt.describe(patient, info))
		}
	})
}

func (pt *PatientsTab) describe(patient *model.Patient, info *model.PatientInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", pt.vc.text(KeyName), patient.Name)
	fmt.Fprintf(&b, "%s: %s\n", pt.vc.text(KeyEmail), orDash(patient.Email))
	fmt.Fprintf(&b, "%s: %d\n\n", pt.vc.text(KeyPatientID), patient.ID)

	if info == nil || info.IsEmpty() {
		b.WriteString(pt.vc.text(KeyNoPatientInfo))
		return b.String()
	}
	if info.Age > 0 {
		fmt.Fprintf(&b, "%s: %d\n", pt.vc.text(KeyAge), info.Age)
	}
	if info.Weight > 0 {
		fmt.Fprintf(&b, "%s: %.1f\n", pt.vc.text(KeyWeight), info.Weight)
	}
	fmt.Fprintf(&b, "%s: %s\n", pt.vc.text(KeyAllergies), orDash(info.Allergies))
	fmt.Fprintf(&b, "%s: %s", pt.vc.text(KeyChronicDiseases), orDash(info.ChronicDiseases))
	return b.String()
}
