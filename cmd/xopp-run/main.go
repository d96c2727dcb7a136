package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"xournalpp/control"
	"xournalpp/model"
	"xournalpp/observability"
	"xournalpp/pdf"
	"xournalpp/plugin"
)

type options struct {
	pluginDir string
	pdfPath   string
	callback  string
	pages     int
	width     float64
	height    float64
	logLevel  string
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "xopp-run: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "xopp-run: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/xopp-run [flags] <plugin-dir>\n")
		flag.PrintDefaults()
	}
	pdfPath := flag.String("pdf", "", "PDF to mount as the document background")
	callback := flag.String("callback", "", "Plugin function to invoke after initUi")
	pages := flag.Int("pages", 1, "Number of blank pages in the document")
	width := flag.Float64("width", 595.28, "Page width in points")
	height := flag.Float64("height", 841.89, "Page height in points")
	logLevel := flag.String("log", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing plugin directory")
	}
	opts.pluginDir = flag.Arg(0)
	opts.pdfPath = *pdfPath
	opts.callback = *callback
	opts.pages = *pages
	opts.width = *width
	opts.height = *height
	opts.logLevel = *logLevel
	return opts, nil
}

func run(opts options) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)
	log := observability.NewLogrusLogger(logger)

	doc := model.NewDocument()
	for i := 0; i < opts.pages; i++ {
		doc.AddPage(model.NewPage(opts.width, opts.height))
	}
	if opts.pdfPath != "" {
		background, err := pdf.Load(opts.pdfPath)
		if err != nil {
			return err
		}
		doc.SetBackground(background)
	}
	ctrl := control.New(control.Config{Document: doc, Logger: log})

	p, err := plugin.Load(plugin.Config{Path: opts.pluginDir, Control: ctrl, Logger: log})
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.RunInitUi(); err != nil {
		return err
	}
	if opts.callback != "" {
		if err := p.CallFunction(opts.callback); err != nil {
			return err
		}
	}
	return emitSummary(ctrl, p)
}

type layerSummary struct {
	Name      string `json:"name"`
	Visible   bool   `json:"isVisible"`
	Annotated bool   `json:"isAnnotated"`
}

type backgroundSummary struct {
	Visible bool   `json:"isVisible"`
	Name    string `json:"name,omitempty"`
}

type pageSummary struct {
	Width               float64           `json:"pageWidth"`
	Height              float64           `json:"pageHeight"`
	Annotated           bool              `json:"isAnnotated"`
	PageTypeFormat      string            `json:"pageTypeFormat"`
	PdfBackgroundPageNo int               `json:"pdfBackgroundPageNo"`
	Background          backgroundSummary `json:"background"`
	Layers              []layerSummary    `json:"layers"`
	CurrentLayer        int               `json:"currentLayer"`
}

type menuSummary struct {
	Menu        string `json:"menu"`
	Callback    string `json:"callback"`
	Accelerator string `json:"accelerator,omitempty"`
}

type documentSummary struct {
	Pages                 []pageSummary `json:"pages"`
	CurrentPage           int           `json:"currentPage"`
	PdfBackgroundFilename string        `json:"pdfBackgroundFilename,omitempty"`
	Menus                 []menuSummary `json:"menus,omitempty"`
}

// emitSummary prints the document the way getDocumentStructure reports
// it to scripts, plus the plugin's registered menu entries.
func emitSummary(ctrl *control.Control, p *plugin.Plugin) error {
	doc := ctrl.Document()
	layers := ctrl.LayerController()

	summary := documentSummary{
		CurrentPage:           layers.CurrentPageID() + 1,
		PdfBackgroundFilename: doc.PdfFilepath(),
	}
	for i := 0; i < doc.PageCount(); i++ {
		page := doc.Page(i)
		ps := pageSummary{
			Width:               page.Width,
			Height:              page.Height,
			Annotated:           page.Annotated(),
			PageTypeFormat:      string(page.Background.Format),
			PdfBackgroundPageNo: page.PdfPageNr + 1,
			Background:          backgroundSummary{Visible: page.BackgroundVisible, Name: page.BackgroundName},
			CurrentLayer:        page.SelectedLayerID,
		}
		for id := 1; id <= page.LayerCount(); id++ {
			layer := page.Layer(id)
			ps.Layers = append(ps.Layers, layerSummary{
				Name:      layers.LayerNameByID(page, id),
				Visible:   layer.Visible,
				Annotated: layer.Annotated(),
			})
		}
		summary.Pages = append(summary.Pages, ps)
	}
	for _, entry := range p.Menus() {
		summary.Menus = append(summary.Menus, menuSummary{
			Menu:        entry.Menu,
			Callback:    entry.Callback,
			Accelerator: entry.Accelerator,
		})
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document summary: %w", err)
	}
	fmt.Printf("%s\n", data)
	return nil
}
