package tui

import (
	"strings"

	"github.com/AryanAbsalan/CityMeet/internal/form"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field order inside the form; mirrors form.Data.
const (
	fieldTitle = iota
	fieldDescription
	fieldCity
	fieldDateTime
	fieldImageURL
	fieldCategory
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Description",
	"City",
	"Date & Time",
	"Image URL (optional)",
	"Category (optional)",
}

// formView is the create/edit form: one text input per editable field,
// tab cycling, enter submits, escape cancels. It holds presentation
// state only; the data it produces goes through the service.
type formView struct {
	inputs  [fieldCount]textinput.Model
	focused int
	edit    bool
	errLine string
}

func newFormView(data form.Data, edit bool) formView {
	f := formView{edit: edit}

	values := [fieldCount]string{
		data.Title,
		data.Description,
		data.City,
		data.DateTime,
		data.ImageURL,
		data.Category,
	}

	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 200
		in.Width = 48
		in.SetValue(values[i])
		f.inputs[i] = in
	}
	f.inputs[fieldDateTime].Placeholder = form.DateTimeLayout

	f.inputs[f.focused].Focus()
	return f
}

// data collects the current input values back into a form.Data.
func (f *formView) data() form.Data {
	return form.Data{
		Title:       f.inputs[fieldTitle].Value(),
		Description: f.inputs[fieldDescription].Value(),
		City:        f.inputs[fieldCity].Value(),
		DateTime:    f.inputs[fieldDateTime].Value(),
		ImageURL:    f.inputs[fieldImageURL].Value(),
		Category:    f.inputs[fieldCategory].Value(),
	}
}

func (f *formView) focusField(i int) {
	f.inputs[f.focused].Blur()
	f.focused = (i + fieldCount) % fieldCount
	f.inputs[f.focused].Focus()
}

func (f *formView) next() { f.focusField(f.focused + 1) }
func (f *formView) prev() { f.focusField(f.focused - 1) }

// update routes a message to the focused input.
func (f *formView) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f *formView) view(st styles) string {
	var b strings.Builder

	title := "Create New Event"
	if f.edit {
		title = "Edit Event"
	}
	b.WriteString(st.header.Render(title))
	b.WriteString("\n\n")

	for i := range f.inputs {
		b.WriteString(st.label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.errLine != "" {
		b.WriteString("\n")
		b.WriteString(st.errText.Render(f.errLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.help.Render("tab/shift+tab move · enter save · esc cancel"))
	return b.String()
}
