package editor

import (
	"github.com/ruminaider/reselect/internal/config"
	"github.com/ruminaider/reselect/internal/sectionlist"
)

// ListFromConfig builds a list of fresh entries from cfg. If cfg names a
// detailed title, the first entry with that title becomes detailed.
func ListFromConfig(cfg config.Config) *sectionlist.List[Entry] {
	list := sectionlist.New[Entry]()
	var detailed *Entry
	for _, s := range cfg.Sections {
		entries := Entries(s.Items...)
		for i := range entries {
			if detailed == nil && cfg.Detailed != "" && entries[i].Title == cfg.Detailed {
				detailed = &entries[i]
			}
		}
		list.AppendSection(s.Title, entries...)
	}
	if detailed != nil {
		list.SetDetailed(*detailed)
	}
	return list
}
