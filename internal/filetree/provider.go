// Package filetree lists a project directory lazily, one level per expansion, showing
// only directories and text files.
package filetree

import (
	"os"
	"path/filepath"

	"package-calculator/internal/logger"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var (
	ErrInvalidRoot   = errors.New("invalid project root")
	ErrListingFailed = errors.New("directory listing failed")
)

const component = "FileTree"

// Provider builds File Nodes from an afero filesystem.
type Provider struct {
	fs     afero.Afero
	logger logger.Logger
}

func NewProvider(fs afero.Fs, log logger.Logger) *Provider {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Provider{
		fs:     afero.Afero{Fs: fs},
		logger: log,
	}
}

// Initialize creates the root node for rootPath without listing it.
func (p *Provider) Initialize(rootPath string) (*Node, error) {
	if rootPath == "" {
		return nil, errors.Wrap(ErrInvalidRoot, "empty path")
	}

	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidRoot, "resolve %q: %v", rootPath, err)
	}

	info, err := p.fs.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrInvalidRoot, "%q does not exist", abs)
		}
		return nil, errors.Wrapf(ErrInvalidRoot, "stat %q: %v", abs, err)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrInvalidRoot, "%q is not a directory", abs)
	}

	p.logger.Debug(component, "root initialized", map[string]interface{}{
		"root": abs,
	})
	return newNode(abs, KindDirectory, true), nil
}

// Expand lists node's directory and replaces its children wholesale. A failed listing
// leaves the node Expanded with no children and returns an error wrapping ErrListingFailed.
func (p *Provider) Expand(node *Node) ([]*Node, error) {
	if node == nil || !node.IsDir() {
		return nil, nil
	}

	entries, err := p.fs.ReadDir(node.path)
	if err != nil {
		node.children = []*Node{}
		err = errors.Wrapf(ErrListingFailed, "%s: %v", node.path, err)
		p.logger.Error(component, err, map[string]interface{}{
			"path": node.path,
		})
		return node.children, err
	}

	children := make([]*Node, 0, len(entries))
	for _, entry := range entries {
		childPath := filepath.Join(node.path, entry.Name())
		switch {
		case p.isDir(childPath, entry):
			children = append(children, newNode(childPath, KindDirectory, false))
		case isTextFile(entry.Name()):
			children = append(children, newNode(childPath, KindTextFile, false))
		}
	}
	node.children = children

	p.logger.Debug(component, "directory expanded", map[string]interface{}{
		"path":     node.path,
		"entries":  len(entries),
		"children": len(children),
	})
	return children, nil
}

// isDir follows symlinks. A broken link is not a directory, so its name decides.
func (p *Provider) isDir(path string, entry os.FileInfo) bool {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}

	target, err := p.fs.Stat(path)
	if err != nil {
		p.logger.Debug(component, "broken symlink", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return false
	}
	return target.IsDir()
}

func (p *Provider) DisplayName(node *Node) string {
	return node.DisplayName()
}
