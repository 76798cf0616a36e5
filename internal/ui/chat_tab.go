package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/porthealth/porthealth-desktop/internal/chat"
	"github.com/porthealth/porthealth-desktop/internal/model"
)

// ChatTab shows contacts, the conversation log and the message input
type ChatTab struct {
	vc        *viewContext
	transport chat.Transport

	contacts     []model.Contact
	contactList  *widget.List
	peerID       int64
	lines        []string
	reminders    []string
	pending      []string
	loading      bool
	logList      *widget.List
	targetEntry  *widget.Entry
	messageEntry *widget.Entry
	sendBtn      *widget.Button
	statusLabel  *widget.Label
	headerLabel  *widget.Label

	content fyne.CanvasObject
}

// NewChatTab creates the chat tab. transport may be nil until connected.
func NewChatTab(vc *viewContext, transport chat.Transport) *ChatTab {
	ct := &ChatTab{vc: vc, transport: transport}

	ct.contactList = widget.NewList(
		func() int { return len(ct.contacts) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ct.contacts) {
				obj.(*widget.Label).SetText(ct.contacts[id].DisplayName(model.DefaultSenderName))
			}
		},
	)
	ct.contactList.OnSelected = ct.selectContact

	ct.logList = widget.NewList(
		func() int { return len(ct.lines) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Wrapping = fyne.TextWrapWord
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(ct.lines) {
				obj.(*widget.Label).SetText(ct.lines[id])
			}
		},
	)

	ct.messageEntry = widget.NewEntry()
	ct.messageEntry.SetPlaceHolder(vc.text(KeyTypeMessage))
	ct.messageEntry.OnSubmitted = func(string) { ct.send() }

	ct.sendBtn = widget.NewButton(vc.text(KeySend), ct.send)
	ct.sendBtn.Importance = widget.HighImportance

	ct.statusLabel = widget.NewLabel("")
	ct.SetStatus(model.ConnectionDisconnected)

	top := fyne.CanvasObject(ct.statusLabel)
	if name := vc.user.AssignedDoctorName(); name != "" && vc.role().IsPatient() {
		ct.headerLabel = widget.NewLabelWithStyle(vc.loc.Format(KeyChatWithDoctor, name), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		top = container.NewVBox(ct.headerLabel, ct.statusLabel)
	}

	input := container.NewBorder(nil, nil, nil, ct.sendBtn, ct.messageEntry)
	if vc.role().IsDoctor() {
		ct.targetEntry = widget.NewEntry()
		ct.targetEntry.SetPlaceHolder(vc.text(KeyPatientID))
		input = container.NewBorder(nil, nil, container.NewGridWrap(fyne.NewSize(TableShortColumnWidth, ct.targetEntry.MinSize().Height), ct.targetEntry), ct.sendBtn, ct.messageEntry)
	}

	contacts := container.NewBorder(widget.NewLabelWithStyle(vc.text(KeyContacts), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), nil, nil, nil, ct.contactList)
	split := container.NewHSplit(contacts, container.NewBorder(nil, input, nil, nil, ct.logList))
	split.SetOffset(0.25)

	ct.content = container.NewBorder(top, nil, nil, nil, split)
	return ct
}

// Content returns the tab's root object
func (ct *ChatTab) Content() fyne.CanvasObject {
	return ct.content
}

// SetTransport attaches the live connection
func (ct *ChatTab) SetTransport(transport chat.Transport) {
	ct.transport = transport
}

// SetStatus shows the socket state; Send is enabled only while a socket is
// open or being opened
func (ct *ChatTab) SetStatus(status model.ConnectionStatus) {
	ct.statusLabel.SetText(ct.vc.loc.Format(KeyChatStatus, status))
	if status.IsActive() {
		ct.sendBtn.Enable()
	} else {
		ct.sendBtn.Disable()
	}
}

// Refresh reloads the contact list
func (ct *ChatTab) Refresh() {
	ct.vc.request(func(ctx context.Context) func() {
		contacts, err := ct.vc.svc.ChatContacts(ctx)
		return func() {
			if err != nil {
				ct.vc.fail(err)
				return
			}
			ct.contacts = contacts
			ct.contactList.Refresh()
		}
	})
}

func (ct *ChatTab) selectContact(id widget.ListItemID) {
	if id < 0 || id >= len(ct.contacts) {
		return
	}
	contact := ct.contacts[id]
	ct.peerID = contact.ID
	if ct.targetEntry != nil {
		ct.targetEntry.SetText(strconv.FormatInt(contact.ID, 10))
	}
	ct.loadHistory(contact)
}

func (ct *ChatTab) loadHistory(contact model.Contact) {
	ct.pending = nil
	ct.loading = true
	ct.vc.request(func(ctx context.Context) func() {
		messages, err := ct.vc.svc.ChatHistory(ctx, contact.ID)
		return func() {
			if ct.peerID != contact.ID {
				return
			}
			ct.loading = false
			if err != nil {
				ct.pending = nil
				ct.vc.fail(err)
				return
			}
			name := contact.DisplayName(model.DefaultSenderName)
			lines := make([]string, 0, len(messages))
			for _, m := range messages {
				if m.SenderName == "" && m.From == contact.ID {
					m.SenderName = name
				}
				lines = append(lines, m.Format(ct.selfID(), ct.vc.text(KeyYou)))
			}
			lines = append(lines, ct.reminders...)
			ct.lines = append(lines, ct.pending...)
			ct.pending = nil
			ct.logList.Refresh()
			ct.logList.ScrollToBottom()
		}
	})
}

// target resolves who the next message goes to: the typed patient ID,
// the selected contact, or a patient's assigned doctor. When there is no
// usable recipient it returns the warning to show.
func (ct *ChatTab) target() (int64, string) {
	if ct.targetEntry != nil {
		if raw := strings.TrimSpace(ct.targetEntry.Text); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return 0, KeyInvalidRecipientID
			}
			return id, ""
		}
	}
	if ct.peerID != 0 {
		return ct.peerID, ""
	}
	if id := ct.vc.user.AssignedDoctorID(); id != 0 {
		return id, ""
	}
	return 0, KeySelectRecipient
}

// send writes the input text to the socket and echoes it locally
func (ct *ChatTab) send() {
	text := strings.TrimSpace(ct.messageEntry.Text)
	if text == "" {
		return
	}
	to, problem := ct.target()
	if problem != "" {
		ct.vc.warn(problem)
		return
	}
	if ct.transport == nil {
		ct.vc.warn(KeyChatNotConnected)
		return
	}

	if err := ct.transport.Send(to, text); err != nil {
		if errors.Is(err, chat.ErrNotConnected) {
			ct.vc.warn(KeyChatNotConnected)
			return
		}
		ct.vc.logger.Warn("chat send failed", "to", to, "error", err)
		ct.vc.notify.Error(ct.vc.text(KeyError), err.Error())
		return
	}

	ct.appendLive(fmt.Sprintf(ChatLineFormat, ct.vc.text(KeyYou), text))
	ct.messageEntry.SetText("")
}

// AppendMessage adds an incoming message to the log. Must run on the UI goroutine.
func (ct *ChatTab) AppendMessage(m model.ChatMessage) {
	if m.SenderName == "" {
		for _, c := range ct.contacts {
			if c.ID == m.From {
				m.SenderName = c.Name
				break
			}
		}
	}
	ct.appendLive(m.Format(ct.selfID(), ct.vc.text(KeyYou)))
}

// AppendReminder adds a reminder line to the log. Reminders stay in the log
// when another conversation is opened.
func (ct *ChatTab) AppendReminder(r model.Reminder) {
	line := fmt.Sprintf("%s %s: %s", IconReminder, ct.vc.text(KeyReminder), r.Message)
	ct.reminders = append(ct.reminders, line)
	ct.appendLine(line)
}

// Lines returns the conversation log
func (ct *ChatTab) Lines() []string {
	return append([]string(nil), ct.lines...)
}

// appendLive adds a message line and keeps it across a history load that is
// still in flight
func (ct *ChatTab) appendLive(line string) {
	if ct.loading {
		ct.pending = append(ct.pending, line)
	}
	ct.appendLine(line)
}

func (ct *ChatTab) appendLine(line string) {
	ct.lines = append(ct.lines, line)
	ct.logList.Refresh()
	ct.logList.ScrollToBottom()
}

func (ct *ChatTab) selfID() int64 {
	if ct.vc.user == nil {
		return 0
	}
	return ct.vc.user.ID
}
