package main

import (
	"fmt"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/pkg/latex"
)

func doGet(s settings, match string) error {
	repo := setupRepo(s)

	entries, err := repo.List()
	if err != nil {
		return err
	}

	root := papertrail.BuildTree(entries)
	root = root.Filtered(papertrail.IsQuizFile, papertrail.MatchName(match))

	if len(root.Children) == 0 {
		fmt.Printf("No matching quiz files for %q\n", match)
		return nil
	}

	root.Sort(papertrail.DefaultSort)

	return root.Walk(func(n *papertrail.Node) error {
		if !n.IsLeaf() {
			return nil
		}

		text, err := repo.ReadText(n)
		if err != nil {
			fmt.Printf("%v failed to download %q: %v\n", crossmark, n.Name(), err)
			return err
		}

		showOutline(n.Name(), latex.Parse(text))
		return nil
	})
}

func showOutline(name string, doc *papertrail.Document) {
	fmt.Println(name)
	fmt.Printf("  mode: %v, %d questions\n", doc.Mode, doc.NumQuestions())

	if doc.Mode == papertrail.ModeSections {
		for _, sec := range doc.Sections {
			fmt.Printf("  %s\n", sec.Title)
			showQuestions(sec.Questions, "  ")
		}
	} else {
		showQuestions(doc.Questions, "")
	}
	fmt.Println()
}

func showQuestions(qs []*papertrail.Question, indent string) {
	for _, q := range qs {
		fmt.Printf("%s  Question %d: %s\n", indent, q.ID, snippet(latex.Plain(q.Text)))
		for _, p := range q.Parts {
			fmt.Printf("%s    Part %d: %s\n", indent, p.ID, snippet(latex.Plain(p.Text)))
		}
	}
}

func snippet(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + ellipsis
}
