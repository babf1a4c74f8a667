package profiles

import (
	"github.com/goliatone/go-nwbext/pkg/namespace"
	"github.com/goliatone/go-nwbext/pkg/spec"
)

// Built-in profile names.
const (
	NameCycleFiles = "cycle-files"
	NameTimer      = "timer"
	NameNotes      = "notes"
)

// File names shared by every ScanImage profile.
const (
	ScanImageSource        = "sb_scanimage.specs.yaml"
	ScanImageNamespaceFile = "sb_scanimage.namespace.yaml"
)

// ScanImageMetadata is the namespace identity of the ScanImage extension.
var ScanImageMetadata = namespace.Metadata{
	Doc:     "Extension for use with Bernardo-Sabatini ScanImage",
	Name:    "sb_scanimage",
	Version: "0.1",
	Author:  "Lawrence Niu",
	Contact: "lawrence@vidriotech.com",
}

func scanImage(name, summary string, groups func() []spec.Group) Profile {
	return Profile{
		Name:          name,
		Summary:       summary,
		Metadata:      ScanImageMetadata,
		Source:        ScanImageSource,
		NamespaceFile: ScanImageNamespaceFile,
		Groups:        groups,
	}
}

// CycleFiles is the ScanImageMetaData group plus the CycleFiles table.
func CycleFiles() Profile {
	return scanImage(NameCycleFiles, "ScanImageMetaData with software timer version and a cycle file table", func() []spec.Group {
		return []spec.Group{
			scanImageMetaData("ScanImageMetaData",
				spec.NewDataset("Software timer version", "software_timer_version", spec.Int),
				startupTime(),
			),
			cycleFiles(),
		}
	})
}

// Timer is the single-group variant keyed on timer_version.
func Timer() Profile {
	return scanImage(NameTimer, "ScanImageMetaData with timer version only", func() []spec.Group {
		return []spec.Group{
			scanImageMetaData("ScanImageMetaData",
				spec.NewDataset("Timer version", "timer_version", spec.Int),
				startupTime(),
			),
		}
	})
}

// Notes is the ScanImageMetadata variant carrying free-form notes.
func Notes() Profile {
	return scanImage(NameNotes, "ScanImageMetadata with software timer version and acquisition notes", func() []spec.Group {
		return []spec.Group{
			scanImageMetaData("ScanImageMetadata",
				spec.NewDataset("Software timer version", "software_timer_version", spec.Int),
				startupTime(),
				spec.NewDataset("Free-form ScanImage notes", "scanimage_notes", spec.Text),
			),
		}
	})
}

func scanImageMetaData(typeDef string, datasets ...spec.Dataset) spec.Group {
	return spec.NewGroup("ScanImage-specific metadata", "scanimage_metadata",
		spec.WithDatasets(datasets...),
		spec.WithAttributes(spec.HelpAttribute("Software timer version", "software timer version")),
		spec.WithTypeDef(typeDef),
	)
}

func startupTime() spec.Dataset {
	return spec.NewDataset("startup time", "startup_time", spec.IsoDatetime)
}

func cycleFiles() spec.Group {
	columns := spec.Compound(
		spec.NewColumn("name", "Cycle file name", spec.Text),
		spec.NewColumn("path", "Cycle path location", spec.Text),
	)
	return spec.NewGroup("Associated Cycle Files", "cycle_file",
		spec.WithDatasets(spec.NewDataset("Table with columns indicating unique cycle configuration files", "cycle_table", columns)),
		spec.WithAttributes(spec.HelpAttribute("table of cycle locations and names", "table of cycle locations and names")),
		spec.WithTypeDef("CycleFiles"),
	)
}
