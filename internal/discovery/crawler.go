package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"smt/internal/domain"
)

// Crawler builds the case hierarchy from a directory tree.
type Crawler struct {
	caseFiles map[string]bool
	required  int
}

// NewCrawler creates a Crawler. caseFiles are the role file names whose joint
// presence makes a directory a leaf case (exact, case-sensitive match).
func NewCrawler(caseFiles []string) *Crawler {
	files := make(map[string]bool, len(caseFiles))
	for _, name := range caseFiles {
		files[name] = true
	}
	return &Crawler{caseFiles: files, required: len(files)}
}

// Crawl walks the directory tree rooted at rootPath and returns the hierarchy
// with rootLabel as the root's display name. The root directory must exist.
func (c *Crawler) Crawl(rootLabel, rootPath string) (*domain.Node, error) {
	rootPath = filepath.Clean(rootPath)
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("case directory does not exist: %s", rootPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("case path is not a directory: %s", rootPath)
	}
	return c.crawlDir(rootLabel, rootPath)
}

func (c *Crawler) crawlDir(label, dir string) (*domain.Node, error) {
	// os.ReadDir sorts by file name, so children order is stable across runs.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read case directory %s: %w", dir, err)
	}

	if c.isCaseDir(entries) {
		return &domain.Node{Label: label, Dir: dir, Kind: domain.KindCase}, nil
	}

	node := &domain.Node{Label: label, Dir: dir, Kind: domain.KindSuite}
	for _, entry := range entries {
		// Non-directory entries are not valid suite or case members.
		if !entry.IsDir() {
			continue
		}
		child, err := c.crawlDir(entry.Name(), filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// isCaseDir reports whether the directory directly contains every required
// case file. A directory with only some of them is still a suite, never an
// error - that keeps partially-populated scaffolding crawlable.
func (c *Crawler) isCaseDir(entries []os.DirEntry) bool {
	if c.required == 0 {
		return false
	}
	found := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if c.caseFiles[entry.Name()] {
			found++
		}
	}
	return found == c.required
}
