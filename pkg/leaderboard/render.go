package leaderboard

import (
	"bytes"
	"fmt"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/warmans/puzzleboard/pkg/scores"
	"golang.org/x/image/font/gofont/goregular"
	"image/color"
	"log"
	"strings"
	"unicode"
)

var font *truetype.Font

func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
}

const (
	imageWidth  = 900
	lineHeight  = 34
	imagePadX   = 30
	imagePadTop = 50
)

var (
	background = color.RGBA{R: 0x12, G: 0x12, B: 0x14, A: 0xff}
	headerText = color.RGBA{R: 0xf5, G: 0xc5, B: 0x18, A: 0xff}
	winnerText = color.RGBA{R: 0x6a, G: 0xaa, B: 0x64, A: 0xff}
	dimText    = color.RGBA{R: 0x87, G: 0x8a, B: 0x8c, A: 0xff}
)

// Render draws the leaderboard as an image. The bundled font has no emoji so
// symbols are left out of the picture.
func (b *Builder) Render(store *scores.Store, date string) (*gg.Context, error) {
	sections := Sections(store, date)

	lines := 1.5
	for _, s := range sections {
		lines += 1.5 + float64(max(1, len(s.Entries)))
	}

	dc := gg.NewContext(imageWidth, imagePadTop+int(lines*lineHeight))
	dc.SetColor(background)
	dc.Clear()

	y := float64(imagePadTop)
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 28}))
	dc.SetColor(headerText)
	dc.DrawString(b.Title(date), imagePadX, y)
	y += lineHeight * 1.5

	for _, section := range sections {
		dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 24}))
		dc.SetColor(color.White)
		dc.DrawString(section.Kind.Title(), imagePadX, y)
		y += lineHeight

		dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 20}))
		if len(section.Entries) == 0 {
			dc.SetColor(dimText)
			dc.DrawString("No scores today", imagePadX+20, y)
			y += lineHeight * 1.5
			continue
		}
		for k, v := range section.Entries {
			if k == 0 {
				dc.SetColor(winnerText)
			} else {
				dc.SetColor(color.White)
			}
			dc.DrawString(
				fmt.Sprintf("%d. %s : %s", k+1, v.Player, withoutSymbols(Summary(section.Kind, v.Record))),
				imagePadX+20,
				y,
			)
			y += lineHeight
		}
		y += lineHeight * 0.5
	}
	return dc, nil
}

// RenderPNG is Render encoded as a PNG.
func (b *Builder) RenderPNG(store *scores.Store, date string) (*bytes.Buffer, error) {
	canvas, err := b.Render(store, date)
	if err != nil {
		return nil, err
	}
	buff := &bytes.Buffer{}
	if err := canvas.EncodePNG(buff); err != nil {
		return nil, err
	}
	return buff, nil
}

func withoutSymbols(s string) string {
	return strings.Join(strings.Fields(strings.Map(func(r rune) rune {
		if unicode.Is(unicode.So, r) || unicode.Is(unicode.Variation_Selector, r) {
			return -1
		}
		return r
	}, s)), " ")
}
