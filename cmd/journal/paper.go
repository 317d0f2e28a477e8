package main

import (
	"fmt"
	"strconv"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/journal"
)

// paper holds the raw values of the paper settings flags.
type paper struct {
	pattern     *string
	paperColor  *string
	lineColor   *string
	lineWidth   *float64
	lineSpacing *int
	font        *string
	fontSize    *int
	textColor   *string
}

func paperFlags(cmd *kingpin.CmdClause, withPattern bool) *paper {
	d := journal.DefaultConfig()
	p := &paper{
		paperColor:  cmd.Flag("paper-color", "Paper color").Default(d.PaperColor.String()).String(),
		lineColor:   cmd.Flag("line-color", "Line color").Default(d.LineColor.String()).String(),
		lineWidth:   cmd.Flag("line-width", "Line width in pixels").Default(strconv.FormatFloat(d.LineWidth, 'f', -1, 64)).Float64(),
		lineSpacing: cmd.Flag("line-spacing", "Line spacing in pixels").Default(strconv.Itoa(d.LineSpacing)).Int(),
		font:        cmd.Flag("font", "Font family").Default(string(d.Font)).String(),
		fontSize:    cmd.Flag("font-size", "Font size in pixels").Default(strconv.Itoa(d.FontSize)).Int(),
		textColor:   cmd.Flag("text-color", "Text color").Default(d.TextColor.String()).String(),
	}
	if withPattern {
		names := make([]string, len(journal.Patterns))
		for i, x := range journal.Patterns {
			names[i] = x.String()
		}
		p.pattern = cmd.Flag("pattern", "Paper pattern").Short('p').Default(d.Pattern.String()).Enum(names...)
	}
	return p
}

// config converts the flag values to validated paper settings.
func (p *paper) config() (journal.PaperConfig, error) {
	c := journal.DefaultConfig()
	var err error

	if p.pattern != nil {
		c.Pattern, err = journal.ParsePattern(*p.pattern)
		if err != nil {
			return c, err
		}
	}
	c.PaperColor, err = journal.ParseColor(*p.paperColor)
	if err != nil {
		return c, fmt.Errorf("paper color: %v", err)
	}
	c.LineColor, err = journal.ParseColor(*p.lineColor)
	if err != nil {
		return c, fmt.Errorf("line color: %v", err)
	}
	c.TextColor, err = journal.ParseColor(*p.textColor)
	if err != nil {
		return c, fmt.Errorf("text color: %v", err)
	}
	c.Font, err = journal.ParseFont(*p.font)
	if err != nil {
		return c, err
	}
	c.LineWidth = *p.lineWidth
	c.LineSpacing = *p.lineSpacing
	c.FontSize = *p.fontSize

	return c, c.Validate()
}
