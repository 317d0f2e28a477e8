package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/journal"
	"github.com/akeil/journal/pkg/render"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	logLevel string
	dataDir  string
}

func main() {
	app := kingpin.New("journal", "Journal with customizable paper")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("log-level", "Log level (debug, info, warning, error, none)").
		Envar("JOURNAL_LOG_LEVEL").Default("warning").StringVar(&s.logLevel)
	app.Flag("data-dir", "Directory with the font files").
		Envar("JOURNAL_DATA_DIR").Default("./data").StringVar(&s.dataDir)

	rnd := app.Command("render", "Render a sheet of paper as PNG")
	rndPaper := paperFlags(rnd, true)
	var (
		rndText   = rnd.Flag("text", "Text file to write onto the paper").Short('t').ExistingFile()
		rndWidth  = rnd.Flag("width", "Image width in pixels").Default(fmt.Sprint(render.DefaultWidth)).Int()
		rndHeight = rnd.Flag("height", "Image height in pixels").Default(fmt.Sprint(render.DefaultHeight)).Int()
		rndOut    = rnd.Flag("output", "Output file").Short('o').Default("paper.png").String()
	)

	sw := app.Command("swatches", "Render a sample of each pattern")
	swPaper := paperFlags(sw, false)
	var (
		swWidth  = sw.Flag("width", "Image width in pixels").Default(fmt.Sprint(render.DefaultWidth)).Int()
		swHeight = sw.Flag("height", "Image height in pixels").Default(fmt.Sprint(render.DefaultHeight)).Int()
		swOut    = sw.Flag("output", "Output directory").Short('o').Default(".").ExistingDir()
	)

	serve := app.Command("serve", "Run the web editor").Default()
	var (
		addr = serve.Flag("addr", "Listen address").Envar("JOURNAL_ADDR").Default("127.0.0.1:8080").String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	journal.SetLogLevel(s.logLevel)

	var err error
	switch command {
	case "render":
		err = doRender(s, rndPaper, *rndText, *rndWidth, *rndHeight, *rndOut)
	case "swatches":
		err = doSwatches(swPaper, *swWidth, *swHeight, *swOut)
	case "serve":
		err = doServe(s, *addr)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
