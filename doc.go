// Package binarc implements container codecs for game resource archives:
// flat blobs of named, offset-addressed entries indexed by a fixed-layout
// directory table.
//
// An [Archive] owns an ordered [Directory] of [Entry] values and delegates
// parsing and serialization to a [Format] codec. Entries opened from a file
// are lazily loaded: only name, size, and source offset stay resident until
// [Archive.LoadEntryData] reads the payload from the backing file.
//
// Open an archive and read an entry:
//
//	a, err := binarc.OpenFile("CSM.BIN")
//	if err != nil {
//	    return err
//	}
//	e := a.Dir().Entry("WALL1")
//	if err := a.LoadEntryData(e); err != nil {
//	    return err
//	}
//	process(e.Data())
//
// Modify and save:
//
//	a.AddEntry(binarc.NewEntry("NEWMAP", mapBytes))
//	err = a.WriteFile("CSM.BIN")
//
// The Chasm: The Rift bin format is built in; additional codecs register
// through [RegisterFormat] and participate in [DetectFormat] dispatch.
package binarc
