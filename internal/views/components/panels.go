package components

import (
	"fmt"

	"package-calculator/internal/filetree"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// Messages lists user-visible messages, newest last.
type Messages struct {
	data binding.StringList
	list *widget.List
}

func NewMessages() *Messages {
	data := binding.NewStringList()
	list := widget.NewListWithData(data,
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)
	return &Messages{data: data, list: list}
}

func (m *Messages) Append(text string) {
	_ = m.data.Append(text)
	m.list.ScrollToBottom()
}

func (m *Messages) GetContainer() fyne.CanvasObject {
	return m.list
}

// Inspector shows details of the node selected in the explorer.
type Inspector struct {
	container *fyne.Container
	name      *widget.Label
	path      *widget.Label
	kind      *widget.Label
	state     *widget.Label
}

func NewInspector() *Inspector {
	in := &Inspector{
		name:  widget.NewLabel(""),
		path:  widget.NewLabel(""),
		kind:  widget.NewLabel(""),
		state: widget.NewLabel(""),
	}
	in.path.Wrapping = fyne.TextWrapBreak

	in.container = container.NewVBox(
		widget.NewLabelWithStyle("Inspector", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem("Name", in.name),
			widget.NewFormItem("Path", in.path),
			widget.NewFormItem("Kind", in.kind),
			widget.NewFormItem("State", in.state),
		),
	)
	in.Clear()
	return in
}

func (in *Inspector) Show(node *filetree.Node) {
	in.name.SetText(node.Name())
	in.path.SetText(node.Path())
	if node.IsRoot() {
		in.kind.SetText(node.Kind().String() + " (project root)")
	} else {
		in.kind.SetText(node.Kind().String())
	}

	switch {
	case !node.IsDir():
		in.state.SetText("-")
	case node.Expanded():
		in.state.SetText(fmt.Sprintf("expanded, %d entries", len(node.Children())))
	default:
		in.state.SetText("not expanded")
	}
}

func (in *Inspector) Clear() {
	in.name.SetText("-")
	in.path.SetText("-")
	in.kind.SetText("-")
	in.state.SetText("-")
}

func (in *Inspector) GetContainer() *fyne.Container {
	return in.container
}

// StatusBar sits at the bottom of the window.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	modeLabel   *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel("Ready"),
		modeLabel:   widget.NewLabel(""),
	}
	sb.container = container.NewBorder(nil, nil, sb.statusLabel, sb.modeLabel)
	return sb
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetPricingMode(mode string) {
	sb.modeLabel.SetText("Pricing: " + mode)
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
