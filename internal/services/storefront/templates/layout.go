package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// Toast is a one-time notice rendered above the page body.
type Toast struct {
	Kind    string
	Message string
}

// LayoutData configures the full-page shell.
type LayoutData struct {
	Title  string
	Lang   string
	Loc    Localizer
	Header HeaderData
	Toast  *Toast
}

type layoutView struct {
	LayoutData
	Body template.HTML
}

// Layout renders the document shell around its templ children.
func Layout(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := renderChildren(ctx)
		if err != nil {
			return err
		}
		data.Header.Loc = data.Loc
		return set.ExecuteTemplate(w, "layout", layoutView{LayoutData: data, Body: body})
	})
}

// MainContent renders only the main region for HTMX swaps.
func MainContent(toast *Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body, err := renderChildren(ctx)
		if err != nil {
			return err
		}
		return set.ExecuteTemplate(w, "main", layoutView{LayoutData: LayoutData{Toast: toast}, Body: body})
	})
}
