package components

import (
	"package-calculator/internal/filetree"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TreeSource supplies the explorer with lazily listed nodes.
type TreeSource interface {
	ChildIDs(id string) []string
	IsBranch(id string) bool
	Node(id string) (*filetree.Node, bool)
}

// Explorer shows the project tree in a single non-closable "Explorer" tab.
type Explorer struct {
	container *container.AppTabs
	content   *fyne.Container
	tree      *widget.Tree
	source    TreeSource

	selectHandler func(id string)
}

// NewExplorer creates an explorer with an empty tab
func NewExplorer() *Explorer {
	e := &Explorer{}
	e.content = container.NewStack(widget.NewLabel("No project open"))
	e.container = container.NewAppTabs(container.NewTabItem("Explorer", e.content))
	return e
}

// Load replaces the whole tree with one rooted at rootID and opens the root branch.
func (e *Explorer) Load(source TreeSource, rootID string) {
	e.source = source
	e.tree = widget.NewTree(e.childIDs, e.isBranch, e.createItem, e.updateItem)
	e.tree.OnSelected = e.onSelected
	e.tree.OpenBranch(rootID)

	e.content.Objects = []fyne.CanvasObject{e.tree}
	e.content.Refresh()
}

// Refresh redraws the tree after nodes were re-listed.
func (e *Explorer) Refresh() {
	if e.tree != nil {
		e.tree.Refresh()
	}
}

func (e *Explorer) SetSelectHandler(handler func(id string)) {
	e.selectHandler = handler
}

func (e *Explorer) GetContainer() fyne.CanvasObject {
	return e.container
}

func (e *Explorer) childIDs(id widget.TreeNodeID) []widget.TreeNodeID {
	if e.source == nil {
		return nil
	}
	return e.source.ChildIDs(id)
}

func (e *Explorer) isBranch(id widget.TreeNodeID) bool {
	return e.source != nil && e.source.IsBranch(id)
}

func (e *Explorer) createItem(branch bool) fyne.CanvasObject {
	icon := widget.NewIcon(theme.FileTextIcon())
	if branch {
		icon.SetResource(theme.FolderIcon())
	}
	return container.NewHBox(icon, widget.NewLabel(""))
}

func (e *Explorer) updateItem(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	node, ok := e.source.Node(id)
	if !ok {
		return
	}

	row := obj.(*fyne.Container)
	if node.IsDir() {
		row.Objects[0].(*widget.Icon).SetResource(theme.FolderIcon())
	} else {
		row.Objects[0].(*widget.Icon).SetResource(theme.FileTextIcon())
	}
	row.Objects[1].(*widget.Label).SetText(node.DisplayName())
}

func (e *Explorer) onSelected(id widget.TreeNodeID) {
	if e.selectHandler != nil {
		e.selectHandler(id)
	}
}
