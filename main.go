package main

import (
	"fmt"

	"github.com/sanity-io/litter"

	"github.com/kevinxiao27/sortvis/replay"
	"github.com/kevinxiao27/sortvis/sorts"
	"github.com/kevinxiao27/sortvis/util"
)

func main() {
	litter.Config.HidePrivateFields = false
	litter.Config.Compact = true

	rec, err := sorts.RecordInts(sorts.NameMerge, []int{5, 2, 4, 1, 3})
	if err != nil {
		panic(err)
	}

	for i := 0; i < rec.Log.Len(); i++ {
		fmt.Printf("%3d %v\n", i, rec.Log.At(i))
	}

	e := replay.New(rec.Log, rec.Initial)
	for !e.Done() {
		if _, err := e.Step(4); err != nil {
			panic(err)
		}
		fmt.Printf("op %2d: %s\n", e.Cursor(), litter.Sdump(e.View()))
	}

	fmt.Printf("Result: %v\n", e.Values(0))
	match := fmt.Sprint(e.Values(0)) == fmt.Sprint(rec.Expected)
	fmt.Println(util.Choose(match, "Replay matches", "Replay differs"))
}
