package main

import (
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	statusFace font.Face
	noteFace   font.Face
)

func init() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}

	const dpi = 72
	statusFace = truetype.NewFace(tt, &truetype.Options{
		Size:    16,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	noteFace = truetype.NewFace(tt, &truetype.Options{
		Size:    13,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
