package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"smt/internal/config"
	"smt/internal/discovery"
	"smt/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunStats reads and displays run statistics from the JSON results file
func (f *Formatter) PrintRunStats() error {
	outputPath := f.config.GetOutputPath()

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Case Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", meta.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped Cases")
	color.Yellow("%-27d │\n", meta.SkippedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.Accept {
		color.Green("✓ Accepted %d candidate(s) as new expectations", meta.PassedCases)
	}
	if meta.FailedCases == 0 {
		color.Green("✓ All cases passed!")
	} else {
		color.Red("✗ %d case(s) failed", meta.FailedCases)
		fmt.Println()
		f.printFailedCasesTree(output.Details)
	}

	return nil
}

// treeNode is one node of the printed failure tree, keyed by qualified-name
// segments.
type treeNode struct {
	name     string
	children map[string]*treeNode
	failed   bool
}

// printFailedCasesTree prints failed cases grouped by their suite path.
func (f *Formatter) printFailedCasesTree(failures []domain.CaseFailure) {
	if len(failures) == 0 {
		return
	}

	root := &treeNode{children: make(map[string]*treeNode)}
	for _, failure := range failures {
		node := root
		segments := strings.Split(failure.QualifiedName, "/")
		for i, segment := range segments {
			child, ok := node.children[segment]
			if !ok {
				child = &treeNode{name: segment, children: make(map[string]*treeNode)}
				node.children[segment] = child
			}
			if i == len(segments)-1 {
				child.failed = true
			}
			node = child
		}
	}

	color.Red("Failed cases:")
	printTreeNode(root, "")
}

func printTreeNode(node *treeNode, prefix string) {
	keys := make([]string, 0, len(node.children))
	for key := range node.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.children[key]
		isLast := i == len(keys)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		if child.failed {
			color.Red("%s%s%s", prefix, connector, child.name)
		} else {
			color.Cyan("%s%s%s", prefix, connector, child.name)
		}
		printTreeNode(child, childPrefix)
	}
}

// PrintCaseTree prints the discovered hierarchy without executing anything.
// Cases filtered out by the include patterns are marked as skipped.
func (f *Formatter) PrintCaseTree(root *domain.Node, filter *discovery.Filter) error {
	total, admitted := countCases(root, root.Label, filter)
	if filter.Empty() {
		color.Green("Found %d case(s):\n", total)
	} else {
		color.Green("Found %d case(s), %d admitted by include patterns:\n", total, admitted)
	}

	color.Cyan("%s", root.Label)
	printCaseNode(root, root.Label, "", filter)
	return nil
}

func printCaseNode(node *domain.Node, qualifiedName, prefix string, filter *discovery.Filter) {
	for i, child := range node.Children {
		isLast := i == len(node.Children)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if isLast {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		childName := qualifiedName + "/" + child.Label
		if child.IsCase() {
			if filter.Include(childName) {
				color.Yellow("%s%s%s", prefix, connector, child.Label)
			} else {
				fmt.Printf("%s%s%s %s\n", prefix, connector, child.Label, color.RedString("[skipped]"))
			}
			continue
		}

		color.Cyan("%s%s%s", prefix, connector, child.Label)
		printCaseNode(child, childName, childPrefix, filter)
	}
}

func countCases(node *domain.Node, qualifiedName string, filter *discovery.Filter) (total, admitted int) {
	if node.IsCase() {
		total = 1
		if filter.Include(qualifiedName) {
			admitted = 1
		}
		return total, admitted
	}
	for _, child := range node.Children {
		t, a := countCases(child, qualifiedName+"/"+child.Label, filter)
		total += t
		admitted += a
	}
	return total, admitted
}
