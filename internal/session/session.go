// Package session holds the state of one interactive run: the open project, its file
// tree, the pricing engine and the message log. It is passed explicitly to whoever
// needs it.
package session

import (
	"fmt"

	"package-calculator/internal/filetree"
	"package-calculator/internal/logger"
	"package-calculator/internal/models"
	"package-calculator/internal/pricing"
)

const (
	AppName   = "PackageCalculator"
	component = "Session"
)

type Session struct {
	provider *filetree.Provider
	engine   *pricing.Engine
	logger   logger.Logger
	messages *MessageLog

	rootPath string
	tree     *filetree.Tree
}

func New(provider *filetree.Provider, engine *pricing.Engine, log logger.Logger) *Session {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Session{
		provider: provider,
		engine:   engine,
		logger:   log,
		messages: NewMessageLog(),
	}
}

// OpenProject discards the current tree and builds a new one rooted at rootPath.
// An invalid root leaves the current project untouched.
func (s *Session) OpenProject(rootPath string) error {
	tree, err := filetree.NewTree(s.provider, rootPath)
	if err != nil {
		s.logger.Error(component, err, map[string]interface{}{
			"root": rootPath,
		})
		s.messages.Add(LevelError, fmt.Sprintf("Cannot open project: %v", err))
		return err
	}

	s.tree = tree
	s.rootPath = tree.Root().Path()

	s.logger.Info(component, "project opened", map[string]interface{}{
		"root": s.rootPath,
	})
	s.messages.Add(LevelInfo, fmt.Sprintf("Opened project %s", s.rootPath))
	return nil
}

// RootPath is empty until a project has been opened.
func (s *Session) RootPath() string {
	return s.rootPath
}

// Tree is nil until a project has been opened.
func (s *Session) Tree() *filetree.Tree {
	return s.tree
}

func (s *Session) Title() string {
	if s.rootPath == "" {
		return AppName
	}
	return AppName + " – " + s.rootPath
}

// ChildIDs feeds the explorer widget. Listing failures go to the message log and the
// node presents as empty.
func (s *Session) ChildIDs(id string) []string {
	if s.tree == nil {
		return nil
	}
	ids, err := s.tree.ChildIDs(id)
	if err != nil {
		s.messages.Add(LevelWarning, err.Error())
	}
	return ids
}

// ExpandNode re-lists a directory, replacing its children.
func (s *Session) ExpandNode(id string) []*filetree.Node {
	if s.tree == nil {
		return nil
	}
	children, err := s.tree.Expand(id)
	if err != nil {
		s.messages.Add(LevelWarning, err.Error())
	}
	return children
}

func (s *Session) IsBranch(id string) bool {
	return s.tree != nil && s.tree.IsBranch(id)
}

func (s *Session) Node(id string) (*filetree.Node, bool) {
	if s.tree == nil {
		return nil, false
	}
	return s.tree.Lookup(id)
}

func (s *Session) Calculate(pkg models.Package) float64 {
	cost := s.engine.CalcShippingCosts(pkg)
	s.logger.Debug(component, "shipping costs calculated", map[string]interface{}{
		"package": pkg.String(),
		"cost":    cost,
		"mode":    s.engine.Mode().String(),
	})
	return cost
}

// CalculateInput parses the calculator fields and prices the result. Unparseable input
// is reported to the message log and returned as an error wrapping models.ErrMalformedInput.
func (s *Session) CalculateInput(length, width, height, weight string) (float64, error) {
	pkg, err := models.ParsePackage(length, width, height, weight)
	if err != nil {
		s.logger.Warning(component, "rejected calculator input", map[string]interface{}{
			"error": err.Error(),
		})
		s.messages.Add(LevelError, fmt.Sprintf("Invalid input: %v", err))
		return 0, err
	}

	cost := s.Calculate(pkg)
	s.messages.Add(LevelInfo, fmt.Sprintf("%s: %s EUR", pkg, models.FormatCost(cost)))
	return cost, nil
}

func (s *Session) PricingMode() pricing.Mode {
	return s.engine.Mode()
}

func (s *Session) SetPricingMode(mode pricing.Mode) {
	if mode == s.engine.Mode() {
		return
	}
	s.engine = pricing.NewEngine(mode)
	s.logger.Info(component, "pricing mode changed", map[string]interface{}{
		"mode": mode.String(),
	})
	s.messages.Add(LevelInfo, fmt.Sprintf("Pricing mode set to %s", mode))
}

func (s *Session) Messages() *MessageLog {
	return s.messages
}

// Report adds a message on behalf of the presentation layer.
func (s *Session) Report(level Level, text string) {
	s.messages.Add(level, text)
}

// Shutdown drops the open project.
func (s *Session) Shutdown() {
	s.logger.Info(component, "session closed", map[string]interface{}{
		"root":     s.rootPath,
		"messages": s.messages.Len(),
	})
	s.tree = nil
	s.rootPath = ""
}
