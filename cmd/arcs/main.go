// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// arcs scaffolds a draft genome assembly from linked-read alignments,
// emitting a scaffold linkage graph and group-tagged scaffold sequences.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kortschak/arcs/internal/align"
	"github.com/kortschak/arcs/internal/arcsconfig"
	"github.com/kortschak/arcs/internal/barcode"
	"github.com/kortschak/arcs/internal/lengths"
	"github.com/kortschak/arcs/internal/pairjoin"
	"github.com/kortschak/arcs/internal/pairmap"
	"github.com/kortschak/arcs/internal/scaffgraph"
	"github.com/kortschak/arcs/internal/scaffout"
)

// multRange is the -index_multiplicity flag value, parsed from
// "<min>-<max>" the way the original tool parses it with a '-'
// delimited stringstream.
type multRange struct{ min, max *int }

func (v multRange) Set(s string) error {
	first, second, ok := strings.Cut(s, "-")
	if !ok {
		return fmt.Errorf("invalid multiplicity range: %q", s)
	}
	min, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return fmt.Errorf("invalid multiplicity range: %v", err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return fmt.Errorf("invalid multiplicity range: %v", err)
	}
	*v.min, *v.max = min, max
	return nil
}

func (v multRange) String() string {
	if v.min == nil || v.max == nil {
		return ""
	}
	return fmt.Sprintf("%d-%d", *v.min, *v.max)
}

func main() {
	p := arcsconfig.Default()

	flag.StringVar(&p.File, "file", "", "input scaffold sequence file (required)")
	flag.StringVar(&p.FofName, "fofName", "", "file of alignment-file paths (required)")
	flag.Float64Var(&p.SeqID, "seq_id", p.SeqID, "minimum percent sequence identity")
	flag.IntVar(&p.MinReads, "min_reads", p.MinReads, "minimum reads per barcode per scaffold-end")
	flag.IntVar(&p.MinLinks, "min_links", p.MinLinks, "minimum links to create an edge (strict >)")
	flag.IntVar(&p.MinSize, "min_size", p.MinSize, "minimum scaffold length to consider (bp)")
	flag.StringVar(&p.BaseName, "base_name", "", "output file prefix (default derived)")
	flag.StringVar(&p.OriginalFile, "original_file", "", "path to a pre-existing graph file to reuse")
	flag.Var(multRange{min: &p.MinMult, max: &p.MaxMult}, "index_multiplicity", "accepted barcode multiplicity range, as min-max")
	flag.IntVar(&p.MaxGrpSize, "max_groupSize", p.MaxGrpSize, "maximum scaffolds in an emitted group")
	flag.IntVar(&p.MaxDegree, "max_degree", p.MaxDegree, "maximum graph degree; 0 disables degree pruning")
	flag.IntVar(&p.EndLength, "end_length", p.EndLength, "length in bp of each scaffold end considered")
	flag.Float64Var(&p.ErrorPercent, "error_percent", p.ErrorPercent, "short-scaffold mid-tolerance band (percent)")
	flag.IntVar(&p.IndexLen, "index_length", p.IndexLen, "required barcode length")
	verbose := flag.Bool("run_verbose", false, "progress verbosity")
	flag.Parse()

	if *verbose {
		p.Verbose++
	}
	if p.File == "" || p.FofName == "" {
		fmt.Fprintln(os.Stderr, "arcs: -file and -fofName are required")
		flag.Usage()
		os.Exit(1)
	}
	if p.BaseName == "" {
		p.BaseName = p.DefaultBaseName()
	}

	logger := log.New(os.Stderr, "arcs: ", log.LstdFlags)
	logger.Printf("parameters: %+v", p)

	seqf, err := os.Open(p.File)
	if err != nil {
		logger.Fatalf("cannot open %q: %v", p.File, err)
	}
	logger.Print("building scaffold length index")
	sizes, err := lengths.Load(seqf, p.Verbose > 0, logger)
	seqf.Close()
	if err != nil {
		logger.Fatalf("failed to build scaffold length index: %v", err)
	}

	idx := barcode.NewIndex()
	mult := barcode.NewMultiplicity()

	var g *scaffgraph.Graph
	if p.OriginalFile != "" {
		logger.Printf("reusing existing graph file %q", p.OriginalFile)
		data, err := ioutil.ReadFile(p.OriginalFile)
		if err != nil {
			logger.Fatalf("cannot open %q: %v", p.OriginalFile, err)
		}
		g, err = scaffgraph.UnmarshalDOT(data)
		if err != nil {
			logger.Fatalf("failed to parse %q: %v", p.OriginalFile, err)
		}
	} else {
		names, err := readFofName(p.FofName)
		if err != nil {
			logger.Fatalf("cannot read %q: %v", p.FofName, err)
		}

		logger.Print("streaming alignment files")
		joiner := pairjoin.NewJoiner(p, sizes, idx, mult)
		if err := joiner.Run(align.NewStream(names)); err != nil {
			logger.Fatalf("alignment pairing failed: %v", err)
		}

		logger.Print("accumulating scaffold pairs")
		pm := pairmap.Accumulate(p, idx, mult, sizes)

		logger.Print("building scaffold graph")
		g = scaffgraph.Build(pm, p.MinLinks)

		graphPath := p.DefaultGraphPath()
		data, err := g.MarshalDOT("scaffolds")
		if err != nil {
			logger.Fatalf("failed to render graph: %v", err)
		}
		if err := ioutil.WriteFile(graphPath, data, 0o644); err != nil {
			logger.Fatalf("failed to write %q: %v", graphPath, err)
		}
	}

	if skipped := g.WeightPrune(p.MinLinks); skipped {
		logger.Print("weight pruning skipped (min_links=0)")
	}
	if skipped := g.DegreePrune(p.MaxDegree); skipped {
		logger.Print("degree pruning skipped (max_degree=0)")
	}

	seqf, err = os.Open(p.File)
	if err != nil {
		logger.Fatalf("cannot reopen %q: %v", p.File, err)
	}
	defer seqf.Close()

	outPath := p.ScaffoldsOutPath()
	out, err := os.Create(outPath)
	if err != nil {
		logger.Fatalf("cannot create %q: %v", outPath, err)
	}
	defer out.Close()

	logger.Printf("writing grouped scaffold output to %q", outPath)
	if err := scaffout.Write(seqf, out, g, p.MaxGrpSize); err != nil {
		logger.Fatalf("failed to write grouped scaffold output: %v", err)
	}

	logger.Print("done")
}

func readFofName(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return align.ReadFofName(f)
}
