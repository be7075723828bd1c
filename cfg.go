package main

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/mzeman/delver/model"
)

const defaultLayoutPath = "data/dungeon.json"

// Load reads a dungeon layout record from disk. The file holds the raw
// room rectangles, door cells, notes and decoration lists exactly as the
// map editor exports them.
func Load(path string) (model.Layout, error) {
	var layout model.Layout
	file, err := os.Open(path)
	if err != nil {
		log.Errorf("failed opening layout %s: %v", path, err)
		return layout, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&layout); err != nil {
		log.Errorf("failed parsing layout %s: %v", path, err)
		return layout, err
	}
	log.WithFields(log.Fields{
		"rooms": len(layout.Rects),
		"doors": len(layout.Doors),
		"notes": len(layout.Notes),
	}).Info("layout loaded")
	return layout, nil
}
