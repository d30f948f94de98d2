package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/sync/errgroup"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/pkg/api"
	"github.com/Tolverne/papertrail2/pkg/canvas"
	"github.com/Tolverne/papertrail2/pkg/latex"
	"github.com/Tolverne/papertrail2/pkg/render"
	"github.com/Tolverne/papertrail2/pkg/store"
)

func doPdf(s settings, match, outDir string, validate bool) error {
	st, user, err := setupStore(s)
	if err != nil {
		return err
	}

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

	var group errgroup.Group
	root.Walk(func(n *papertrail.Node) error {
		if !n.IsLeaf() {
			return nil
		}

		group.Go(func() error {
			return renderPdf(repo, st, user.DisplayName, n, outDir, validate)
		})
		return nil
	})
	return group.Wait()
}

func renderPdf(repo *api.Repository, st *store.Store, author string, n *papertrail.Node, outDir string, validate bool) error {
	fmt.Printf("%v download %q\n", ellipsis, n.Name())
	text, err := repo.ReadText(n)
	if err != nil {
		fmt.Printf("%v failed to download %q: %v\n", crossmark, n.Name(), err)
		return err
	}

	doc := latex.Parse(text)
	now := time.Now()

	path := filepath.Join(outDir, render.Filename(n.Name(), author, now))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info := render.Info{
		Title:    n.Name(),
		Author:   author,
		Modified: now,
	}

	fmt.Printf("%v render %q\n", ellipsis, n.Name())
	err = render.PDF(f, info, buildEntries(doc, st))
	if err != nil {
		fmt.Printf("%v failed to render %q: %v\n", crossmark, n.Name(), err)
		return err
	}

	if validate {
		if err = pdfapi.ValidateFile(path, nil); err != nil {
			fmt.Printf("%v %q is not a valid PDF: %v\n", crossmark, path, err)
			return err
		}
	}

	fmt.Printf("%v quiz %q saved as %q.\n", checkmark, n.Name(), path)
	return nil
}

// buildEntries flattens the document into render entries, one per part,
// pairing each part with the stored drawing for its key, if any.
func buildEntries(doc *papertrail.Document, st *store.Store) []render.Entry {
	entries := make([]render.Entry, 0)

	add := func(section string, q *papertrail.Question, key func(partID int) papertrail.Key) {
		for _, p := range q.Parts {
			entries = append(entries, render.Entry{
				Section:      section,
				QuestionID:   q.ID,
				QuestionText: latex.Plain(q.Text),
				PartID:       p.ID,
				PartText:     latex.Plain(p.Text),
				Drawing:      loadDrawing(st, key(p.ID)),
			})
		}
	}

	if doc.Mode == papertrail.ModeSections {
		for i, sec := range doc.Sections {
			sectionID := i
			for _, q := range sec.Questions {
				qID := q.ID
				add(sec.Title, q, func(partID int) papertrail.Key {
					return papertrail.NewSectionKey(sectionID, qID, partID)
				})
			}
		}
	} else {
		for _, q := range doc.Questions {
			qID := q.ID
			add("", q, func(partID int) papertrail.Key {
				return papertrail.NewKey(qID, partID)
			})
		}
	}

	return entries
}

func loadDrawing(st *store.Store, key papertrail.Key) image.Image {
	svg, ok := st.Load(key)
	if !ok {
		return nil
	}

	img, err := canvas.DecodeSVG(svg)
	if err != nil {
		fmt.Printf("%v skipping unreadable drawing for %q: %v\n", crossmark, key, err)
		return nil
	}
	return img
}
