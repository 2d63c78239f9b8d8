package presenter

import (
	"fmt"
	"io"
	"strings"

	"wkp/internal/model"

	"github.com/fatih/color"
)

const capitalizationHint = "On compound item names, it is recommended to have the second word in lowercase rather than uppercase."

type Mode int

const (
	FirstParagraphOnly Mode = iota
	Whole
)

type Presenter struct {
	out  io.Writer
	root string
	mode Mode

	title *color.Color
	muted *color.Color
	alert *color.Color
}

// New returns a Presenter writing to out. root is the wiki root URI used for "read more" links.
func New(out io.Writer, root string, mode Mode, noColor bool) *Presenter {
	p := &Presenter{
		out:   out,
		root:  root,
		mode:  mode,
		title: color.New(color.Bold),
		muted: color.RGB(128, 128, 128),
		alert: color.New(color.FgHiRed),
	}
	if noColor {
		p.title.DisableColor()
		p.muted.DisableColor()
		p.alert.DisableColor()
	}
	return p
}

// Print renders pages in order. A missing page is reported and skipped; only write errors are returned.
func (p *Presenter) Print(pages []model.Page) error {
	for _, page := range pages {
		var err error
		switch {
		case page.Missing:
			err = p.printMissing(page)
		case page.Invalid:
			err = p.printInvalid(page)
		default:
			err = p.printPage(page)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Presenter) printMissing(page model.Page) error {
	_, err := fmt.Fprintf(p.out, "%s\n%s\n",
		p.alert.Sprintf("%q does not exist.", page.Title),
		p.alert.Sprint(capitalizationHint))
	return err
}

func (p *Presenter) printInvalid(page model.Page) error {
	_, err := fmt.Fprintf(p.out, "%s\n", p.alert.Sprintf("%q is not a valid title: %s", page.Title, page.InvalidReason))
	return err
}

func (p *Presenter) printPage(page model.Page) error {
	id, _ := page.ID()
	extract, _ := page.Text()

	if _, err := fmt.Fprintf(p.out, "[ %s ]  %s\n",
		p.title.Sprint(page.Title),
		p.muted.Sprintf("(Page ID: %d)", id)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.out, "  ~ %s\n\n", p.extract(extract)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.out, "%s\n\n\n", p.muted.Sprintf("Read more at %s", page.WikiURL(p.root)))
	return err
}

func (p *Presenter) extract(text string) string {
	if p.mode == Whole {
		return text
	}
	first, _, _ := strings.Cut(text, "\n")
	return first
}
