// Command fcsymviz builds the rank-3 coset projector for a demonstration
// supercell and renders its structure — per-row occupancy and entry
// magnitude distribution — to a self-contained HTML page.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/latticeforge/fcsym/compress"
	"github.com/latticeforge/fcsym/crystal"
	"github.com/latticeforge/fcsym/cutoff"
	"github.com/latticeforge/fcsym/sparse"
	"github.com/latticeforge/fcsym/spgrep"
	"github.com/latticeforge/fcsym/symfind"
)

func main() {
	out := flag.String("out", "projector.html", "output HTML file")
	radius := flag.Float64("cutoff", 0, "interaction cutoff radius; 0 disables the mask")
	workers := flag.Int("workers", 1, "parallel coset-term workers")
	flag.Parse()

	proj, err := buildProjector(*radius, *workers)
	if err != nil {
		log.Fatalf("fcsymviz: %v", err)
	}
	log.Printf("projector: %dx%d, %d stored entries", proj.Rows(), proj.Cols(), proj.NNZ())

	page := components.NewPage()
	page.AddCharts(
		rowOccupancyChart(proj),
		magnitudeChart(proj),
	)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("fcsymviz: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("fcsymviz: render: %v", err)
	}
	log.Printf("wrote %s", *out)
}

// buildProjector runs the full pipeline on a two-species polar tetragonal
// 2×1×1 supercell (4 atoms, 2 lattice points).
func buildProjector(radius float64, workers int) (*sparse.CSR, error) {
	cell, err := crystal.NewCell(
		[3][3]float64{{6, 0, 0}, {0, 3, 0}, {0, 0, 5}},
		[][3]float64{{0, 0, 0}, {0.5, 0, 0}, {0.25, 0.5, 0.3}, {0.75, 0.5, 0.3}},
		[]int{30, 30, 16, 16},
	)
	if err != nil {
		return nil, err
	}
	rep, err := spgrep.NewRep(cell, symfind.NewFinder(), symfind.Resolver{})
	if err != nil {
		return nil, err
	}
	log.Printf("cell: %d atoms, %d operations, %d lattice points, %d coset representatives",
		cell.NumAtoms(), len(rep.Operations()), rep.NumLatticePoints(), rep.NumCosets())

	rr, err := spgrep.NewRankRep(rep, 3)
	if err != nil {
		return nil, err
	}
	indep, err := symfind.IndependentAtoms(rep.TranslationPermutations())
	if err != nil {
		return nil, err
	}

	popts := []compress.ProjectorOption{compress.WithWorkers(workers)}
	if radius > 0 {
		cut, err := cutoff.NewCutoff(cell, radius)
		if err != nil {
			return nil, err
		}
		popts = append(popts, compress.WithTripleMask(cut.TripleMask()))
	}

	return compress.CosetProjector(rr, indep, popts...)
}

// rowOccupancyChart plots stored entries per projector row.
func rowOccupancyChart(m *sparse.CSR) *charts.Bar {
	labels := make([]string, m.Rows())
	items := make([]opts.BarData, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		cols, _, _ := m.Row(r) // r is in range
		labels[r] = fmt.Sprintf("%d", r)
		items[r] = opts.BarData{Value: len(cols)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Projector row occupancy", Subtitle: "stored entries per compressed row"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "fcsym projector", Width: "1200px", Height: "500px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("nnz", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return bar
}

// magnitudeChart plots a log10-binned histogram of entry magnitudes.
func magnitudeChart(m *sparse.CSR) *charts.Bar {
	const lo, hi = -12, 1 // log10 magnitude range
	counts := make([]int, hi-lo)
	for r := 0; r < m.Rows(); r++ {
		_, vals, _ := m.Row(r)
		for _, v := range vals {
			a := math.Abs(v)
			if a == 0 {
				continue
			}
			b := int(math.Floor(math.Log10(a))) - lo
			if b < 0 {
				b = 0
			}
			if b >= len(counts) {
				b = len(counts) - 1
			}
			counts[b]++
		}
	}
	labels := make([]string, len(counts))
	items := make([]opts.BarData, len(counts))
	for i := range counts {
		labels[i] = fmt.Sprintf("1e%d", lo+i)
		items[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Entry magnitudes", Subtitle: "log10-binned |value| counts"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "fcsym projector", Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("count", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return bar
}
