package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/dot5enko/column-engine/column"
	"github.com/dot5enko/column-engine/lists"
	"github.com/dot5enko/column-engine/schema"
)

func testCycles(n int, label string, cb func()) {

	before := time.Now()

	for i := 0; i < n; i++ {
		cb()
	}

	after := time.Since(before)

	log.Printf(" %s : %d cycles in %s, %d ns/cycle", label, n, after, after.Nanoseconds()/int64(n))
}

func genIntColumn(name string, size int, distinct int64) *column.Materialized[int64] {

	col := column.NewMaterialized[int64](name)
	for i := 0; i < size; i++ {
		col.Append(rand.Int63n(distinct))
	}

	return col
}

func main() {

	size := 40000

	left := genIntColumn("orders", size, 5000)
	right := genIntColumn("customers", size/8, 5000)

	log.Printf("%s", color.HiGreenString("generated %d + %d rows", left.Size(), right.Size()))

	probe := schema.Int(2500)

	testCycles(100, "serial selection", func() {
		_, _ = left.Selection(probe, schema.Lesser)
	})

	testCycles(100, "parallel selection x8", func() {
		_, _ = left.ParallelSelection(probe, schema.Lesser, 8)
	})

	// conjunction of two predicates as a position intersection
	below, _ := left.Selection(probe, schema.Lesser)
	above, _ := left.Selection(schema.Int(1000), schema.Greater)
	band := lists.Intersect(below, above)

	log.Printf("selection band (1000, 2500): %d of %d rows", len(band), left.Size())

	var pairs int
	testCycles(10, "hash join", func() {
		r, err := left.HashJoin(right)
		if err != nil {
			panic(err)
		}
		pairs = r.Len()
	})

	merged, _ := left.SortMergeJoin(right)

	log.Printf("%s", color.HiGreenString("hash join pairs : %d, sort-merge pairs : %d", pairs, merged.Len()))

	// compression comparison on a run-friendly distribution
	rle := column.NewRLE[int64]("status")
	dict := column.NewDictionary[int64]("status")
	plain := column.NewMaterialized[int64]("status")
	for i := 0; i < size; i++ {
		v := int64(i / 100)
		rle.Append(v)
		dict.Append(v)
		plain.Append(v)
	}

	log.Printf("footprints: plain %d, dict %d (distinct %d), rle %d (%d runs)",
		plain.SizeInBytes(), dict.SizeInBytes(), dict.DistinctCount(), rle.SizeInBytes(), rle.RunCount())

	dir, err := os.MkdirTemp("", "column-engine")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := rle.Store(dir + "/"); err != nil {
		panic(err)
	}

	restored := column.NewRLE[int64]("status")
	if err := restored.Load(dir + "/"); err != nil {
		panic(err)
	}

	if !rle.Equal(restored) {
		log.Printf("%s", color.HiRedString("store/load mismatch"))
		spew.Dump(restored.Uid())
		return
	}

	log.Printf("%s", color.HiGreenString("store/load cycle ok, %d rows restored", restored.Size()))
}
