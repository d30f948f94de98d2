package main

import (
	"fmt"

	papertrail "github.com/Tolverne/papertrail2"
)

func doLs(s settings, format, match string) error {
	repo := setupRepo(s)

	entries, err := repo.List()
	if err != nil {
		return err
	}

	root := papertrail.BuildTree(entries)
	filters := make([]papertrail.NodeFilter, 0)
	if match != "" {
		filters = append(filters, papertrail.IsQuizFile, papertrail.MatchName(match))
	}

	root = root.Filtered(filters...)

	if len(root.Children) == 0 {
		fmt.Println("Found no matching quiz files.")
		return nil
	}

	root.Sort(papertrail.DefaultSort)

	fmt.Println("Quiz Files")
	fmt.Println("----------")

	switch format {
	case "tree":
		showTree(root)
	case "list":
		showList(root)
	default:
		return fmt.Errorf("unsupported format, choose one of 'tree', 'list'")
	}

	return nil
}

func showTree(n *papertrail.Node) {
	for _, line := range n.Outline(nil) {
		fmt.Println(line)
	}
}

func showList(n *papertrail.Node) {
	n.Walk(func(n *papertrail.Node) error {
		if n.IsLeaf() {
			fmt.Print("  ")
		} else {
			fmt.Print("d ")
		}

		fmt.Println(n.Path())
		return nil
	})
}
