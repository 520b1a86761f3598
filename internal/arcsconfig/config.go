// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arcsconfig holds the process-wide configuration for a scaffold
// linkage run. A Params value is built once at startup from command line
// flags and is read-only thereafter; it is passed explicitly down the
// pipeline rather than kept as a mutable global.
package arcsconfig

import (
	"fmt"
	"os"
)

// Params is the full set of tuning parameters for a scaffold linkage run.
type Params struct {
	// File is the path to the assembled scaffold sequences (multi-FASTA).
	File string
	// FofName is the path to a file of alignment file names.
	FofName string

	// SeqID is the minimum percent sequence identity required to admit a
	// read's alignment into the graph.
	SeqID float64
	// MinReads is the minimum number of mapping read pairs per barcode per
	// scaffold end required before that end is trusted.
	MinReads int
	// MinLinks is the minimum number of links required to keep an edge.
	MinLinks int
	// MinSize is the minimum scaffold length, in bp, considered for
	// scaffolding.
	MinSize int

	// BaseName is the prefix used for output files. If empty, DefaultBaseName
	// derives one.
	BaseName string
	// OriginalFile is the path to a previously generated graph file to reuse
	// instead of recomputing from alignment input. Empty disables reuse.
	OriginalFile string

	// MinMult and MaxMult bound the accepted barcode multiplicity range.
	MinMult, MaxMult int

	// MaxGrpSize is the maximum number of scaffolds allowed in an emitted
	// group.
	MaxGrpSize int
	// MaxDegree is the maximum graph vertex degree; 0 disables degree
	// pruning.
	MaxDegree int

	// EndLength is E, the length in bp of each scaffold end considered by
	// the orientation resolver.
	EndLength int
	// ErrorPercent is the short-scaffold mid-tolerance band, as a percent.
	ErrorPercent float64

	// IndexLen is L_idx, the required length of a barcode sequence.
	IndexLen int

	// Verbose enables progress narration.
	Verbose int
}

// Default returns a Params populated with the documented defaults, with
// File and FofName left empty as they are required arguments.
func Default() Params {
	return Params{
		SeqID:      90,
		MinReads:   2,
		MinLinks:   5,
		MinSize:    500,
		MinMult:    1000,
		MaxMult:    2000,
		MaxGrpSize: 100,
		MaxDegree:  0,
		IndexLen:   14,
	}
}

// DefaultBaseName derives the base_name used when none was given on the
// command line, reproducing the original tool's naming scheme.
func (p Params) DefaultBaseName() string {
	return fmt.Sprintf("%s.scaff_l%d_s%g_c%d_d%d_r%g_e%d_pid%d",
		p.File, p.MinLinks, p.SeqID, p.MinReads, p.MaxDegree, p.ErrorPercent, p.EndLength, os.Getpid())
}

// DefaultGraphPath derives the original graph file path used when
// original_file was not given on the command line.
func (p Params) DefaultGraphPath() string {
	return fmt.Sprintf("%s.scaff_s%g_c%d_l%d_r%g_e%d_original.gv",
		p.File, p.SeqID, p.MinReads, p.MinLinks, p.ErrorPercent, p.EndLength)
}

// ScaffoldsOutPath returns the path for the group-tagged scaffold output.
func (p Params) ScaffoldsOutPath() string {
	base := p.BaseName
	if base == "" {
		base = p.DefaultBaseName()
	}
	return base + "_scaffolds.fa"
}
