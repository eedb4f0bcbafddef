package huffman

import (
	"fmt"
	"strings"

	"github.com/cocosip/go-jfif/jpeg/common"
)

// Table classes used in the DHT class/destination byte
const (
	ClassDC byte = 0
	ClassAC byte = 1
)

// TableSpec is an uncompiled BITS/HUFFVAL pair
type TableSpec struct {
	Name   string
	Bits   [MaxCodeLength]int
	Values []byte
}

// TableSet holds the four tables of a baseline scan, indexed by channel class
type TableSet struct {
	dc [2]*Table
	ac [2]*Table
}

// NewTableSet compiles the DC and AC tables for luma (index 0) and chroma (index 1)
func NewTableSet(dc, ac [2]TableSpec) (*TableSet, error) {
	set := &TableSet{}
	for i := 0; i < 2; i++ {
		t, err := NewTable(dc[i].Name, dc[i].Bits, dc[i].Values)
		if err != nil {
			return nil, err
		}
		set.dc[i] = t

		t, err = NewTable(ac[i].Name, ac[i].Bits, ac[i].Values)
		if err != nil {
			return nil, err
		}
		set.ac[i] = t
	}
	return set, nil
}

// DC returns the DC table for a channel class
func (s *TableSet) DC(class common.ChannelClass) (*Table, error) {
	if class != common.Luma && class != common.Chroma {
		return nil, fmt.Errorf("%w: %d", common.ErrInvalidChannelClass, int(class))
	}
	return s.dc[class], nil
}

// AC returns the AC table for a channel class
func (s *TableSet) AC(class common.ChannelClass) (*Table, error) {
	if class != common.Luma && class != common.Chroma {
		return nil, fmt.Errorf("%w: %d", common.ErrInvalidChannelClass, int(class))
	}
	return s.ac[class], nil
}

// Segment is one table of a DHT segment with its class and destination
type Segment struct {
	Class byte
	ID    byte
	Table *Table
}

// Segments lists the tables in DHT order: DC luma, AC luma, DC chroma, AC chroma
func (s *TableSet) Segments() []Segment {
	return []Segment{
		{Class: ClassDC, ID: 0, Table: s.dc[common.Luma]},
		{Class: ClassAC, ID: 0, Table: s.ac[common.Luma]},
		{Class: ClassDC, ID: 1, Table: s.dc[common.Chroma]},
		{Class: ClassAC, ID: 1, Table: s.ac[common.Chroma]},
	}
}

// TableMode selects how the tables of an encode are obtained
type TableMode int

const (
	// ModeDefault uses the typical tables of Annex K
	ModeDefault TableMode = iota
	// ModeDerived builds optimal tables from the image's own symbol statistics
	ModeDerived
)

// String returns the mode name
func (m TableMode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeDerived:
		return "derived"
	default:
		return fmt.Sprintf("TableMode(%d)", int(m))
	}
}

// ParseTableMode parses a mode name as printed by String
func ParseTableMode(s string) (TableMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "standard", "":
		return ModeDefault, nil
	case "derived", "optimized", "optimal":
		return ModeDerived, nil
	default:
		return ModeDefault, fmt.Errorf("%w: unknown table mode %q", common.ErrInvalidHuffmanTable, s)
	}
}

// NeedsStatistics reports whether BuildTables requires a statistics pass
func (m TableMode) NeedsStatistics() bool {
	return m == ModeDerived
}

// Statistics counts the symbols of the four symbol streams.
// Cb and Cr share the chroma histograms.
type Statistics struct {
	DC [2]Frequencies
	AC [2]Frequencies
}

// AddDC counts one DC category
func (s *Statistics) AddDC(class common.ChannelClass, sym byte) {
	s.DC[class][sym]++
}

// AddAC counts one AC run/size symbol
func (s *Statistics) AddAC(class common.ChannelClass, sym byte) {
	s.AC[class][sym]++
}

// BuildTables returns the table set for mode. Statistics are only consulted in
// ModeDerived and must then be non-nil.
func BuildTables(mode TableMode, stats *Statistics) (*TableSet, error) {
	switch mode {
	case ModeDefault:
		return DefaultTables(), nil
	case ModeDerived:
		if stats == nil {
			return nil, fmt.Errorf("%w: derived tables need statistics", common.ErrInvalidHuffmanTable)
		}
		var dc, ac [2]TableSpec
		names := [2]string{"luminance", "chrominance"}
		for i := 0; i < 2; i++ {
			spec, err := Build("DC "+names[i], &stats.DC[i])
			if err != nil {
				return nil, err
			}
			dc[i] = spec

			spec, err = Build("AC "+names[i], &stats.AC[i])
			if err != nil {
				return nil, err
			}
			ac[i] = spec
		}
		return NewTableSet(dc, ac)
	default:
		return nil, fmt.Errorf("%w: unknown table mode %d", common.ErrInvalidHuffmanTable, int(mode))
	}
}
