package hausdoc_test

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/lvillar/hausdoc"
	"github.com/lvillar/hausdoc/catalog"
	"github.com/lvillar/hausdoc/submission"
)

func ExampleGenerator_Render() {
	cat, err := catalog.Load("catalog/testdata/catalog.json")
	if err != nil {
		fmt.Println(err)
		return
	}
	sub, err := submission.Load("submission/testdata/golden.json")
	if err != nil {
		fmt.Println(err)
		return
	}

	gen, err := hausdoc.New(
		hausdoc.WithCatalog(cat),
		hausdoc.WithLogger(log.New(io.Discard, "", 0)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	var buf bytes.Buffer
	m, err := gen.Render(&buf, sub)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	fmt.Println(len(m.Pages), "pages,", m.Count(hausdoc.KindComponent), "components")
	fmt.Println("floor plan:", m.Count(hausdoc.KindFloorPlan) == 1)
	// Output:
	// true
	// 15 pages, 7 components
	// floor plan: true
}
