package session

import (
	"os"
	"testing"
	"time"

	"package-calculator/internal/filetree"
	"package-calculator/internal/models"
	"package-calculator/internal/pricing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type failingFs struct {
	afero.Fs
	failPath string
}

func (f failingFs) Open(name string) (afero.File, error) {
	if name == f.failPath {
		return nil, os.ErrPermission
	}
	return f.Fs.Open(name)
}

func newFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj/c", 0o755))
	require.NoError(t, fs.MkdirAll("/other/docs", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/proj/a.txt", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/proj/b.md", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/other/readme.txt", nil, 0o644))
	return fs
}

func newSession(fs afero.Fs) *Session {
	return New(filetree.NewProvider(fs, nil), pricing.NewEngine(pricing.Faithful), nil)
}

func TestTitle(t *testing.T) {
	s := newSession(newFs(t))
	require.Equal(t, "PackageCalculator", s.Title())

	require.NoError(t, s.OpenProject("/proj"))
	require.Equal(t, "PackageCalculator – /proj", s.Title())
	require.Equal(t, "/proj", s.RootPath())
}

func TestOpenProjectReplacesTree(t *testing.T) {
	s := newSession(newFs(t))
	require.NoError(t, s.OpenProject("/proj"))
	require.Equal(t, []string{"/proj/a.txt", "/proj/c"}, s.ChildIDs("/proj"))
	oldRoot := s.Tree().Root()

	require.NoError(t, s.OpenProject("/other"))
	require.NotSame(t, oldRoot, s.Tree().Root())
	require.Equal(t, "/other", s.Tree().Root().Path())

	for _, id := range []string{"/proj", "/proj/a.txt", "/proj/c"} {
		_, ok := s.Node(id)
		require.False(t, ok, id)
	}
	require.Equal(t, []string{"/other/docs", "/other/readme.txt"}, s.ChildIDs("/other"))
}

func TestOpenProjectInvalidRootKeepsCurrentTree(t *testing.T) {
	s := newSession(newFs(t))
	require.NoError(t, s.OpenProject("/proj"))
	tree := s.Tree()

	err := s.OpenProject("/proj/a.txt")
	require.True(t, errors.Is(err, filetree.ErrInvalidRoot))
	require.Same(t, tree, s.Tree())
	require.Equal(t, "/proj", s.RootPath())

	msgs := s.Messages().All()
	require.Equal(t, LevelError, msgs[len(msgs)-1].Level)
}

func TestListingFailureIsReported(t *testing.T) {
	s := newSession(failingFs{Fs: newFs(t), failPath: "/proj/c"})
	require.NoError(t, s.OpenProject("/proj"))
	s.ChildIDs("/proj")

	before := s.Messages().Len()
	require.Empty(t, s.ChildIDs("/proj/c"))
	require.Equal(t, before+1, s.Messages().Len())

	msgs := s.Messages().All()
	require.Equal(t, LevelWarning, msgs[len(msgs)-1].Level)
	require.Contains(t, msgs[len(msgs)-1].Text, "directory listing failed")
}

func TestNoProjectIsHarmless(t *testing.T) {
	s := newSession(newFs(t))

	require.Nil(t, s.Tree())
	require.Nil(t, s.ChildIDs(""))
	require.Nil(t, s.ExpandNode("/proj"))
	require.False(t, s.IsBranch("/proj"))
	_, ok := s.Node("/proj")
	require.False(t, ok)
}

func TestCalculateInput(t *testing.T) {
	s := newSession(newFs(t))

	cost, err := s.CalculateInput("100", "100", "100", "100")
	require.NoError(t, err)
	require.Equal(t, models.CostLarge, cost)

	_, err = s.CalculateInput("100", "x", "100", "100")
	require.True(t, errors.Is(err, models.ErrMalformedInput))

	msgs := s.Messages().All()
	require.Len(t, msgs, 2)
	require.Equal(t, LevelInfo, msgs[0].Level)
	require.Contains(t, msgs[0].Text, "5.99")
	require.Equal(t, LevelError, msgs[1].Level)
}

func TestSetPricingMode(t *testing.T) {
	s := newSession(newFs(t))
	small := models.NewPackage(200, 200, 100, 500)

	require.Equal(t, models.CostLarge, s.Calculate(small))

	s.SetPricingMode(pricing.Corrected)
	require.Equal(t, pricing.Corrected, s.PricingMode())
	require.Equal(t, models.CostSmall, s.Calculate(small))
}

func TestShutdownDropsProject(t *testing.T) {
	s := newSession(newFs(t))
	require.NoError(t, s.OpenProject("/proj"))

	s.Shutdown()
	require.Nil(t, s.Tree())
	require.Equal(t, "PackageCalculator", s.Title())
}

func TestMessageLogNotifiesSubscribers(t *testing.T) {
	log := NewMessageLog()
	log.now = func() time.Time { return time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC) }

	var got []Message
	log.Subscribe(func(m Message) { got = append(got, m) })

	log.Add(LevelWarning, "careful")
	require.Len(t, got, 1)
	require.Equal(t, "03:04:05 [WARN] careful", got[0].String())
	require.Equal(t, got, log.All())
}

func TestExpandNodeRelists(t *testing.T) {
	fs := newFs(t)
	s := newSession(fs)
	require.NoError(t, s.OpenProject("/proj"))

	first := s.ExpandNode("/proj")
	require.Len(t, first, 2)

	require.NoError(t, afero.WriteFile(fs, "/proj/new.TXT", nil, 0o644))
	second := s.ExpandNode("/proj")
	require.Len(t, second, 3)
	require.True(t, s.IsBranch("/proj/c"))
	require.False(t, s.IsBranch("/proj/new.TXT"))
}
