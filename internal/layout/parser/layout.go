package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npratt/splitchance/internal/component/resetchance"
	"github.com/npratt/splitchance/internal/layout"
)

// ResetChancePath is the component path LiveSplit writes for Reset Chance
// components.
const ResetChancePath = "LiveSplit.ResetChance.dll"

type layoutFile struct {
	XMLName    xml.Name          `xml:"Layout"`
	Components []layoutComponent `xml:"Components>Component"`
}

type layoutComponent struct {
	Path     string          `xml:"Path"`
	Settings settingsElement `xml:"Settings"`
}

// ParseLayout reads a LiveSplit layout file and builds every component it
// supports, in layout order.
func ParseLayout(r io.Reader) (*layout.Layout, error) {
	var file layoutFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	out := layout.New()
	for i, lc := range file.Components {
		path := strings.TrimSpace(lc.Path)
		switch path {
		case ResetChancePath:
			c := resetchance.New()
			if err := resetChanceSettings(lc.Settings, c); err != nil {
				return nil, fmt.Errorf("component %d (%s): %w", i, path, err)
			}
			out.Push(c)
		default:
			out.Unsupported = append(out.Unsupported, path)
		}
	}
	return out, nil
}

// LoadLayout reads a layout file from disk.
func LoadLayout(path string) (*layout.Layout, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ParseLayout(file)
}
