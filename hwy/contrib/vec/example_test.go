package vec_test

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-vkern/hwy/contrib/vec"
)

func ExampleMaxFloat64() {
	fmt.Println(vec.MaxFloat64(3, []float64{1, 5, 3}))
	fmt.Println(vec.MaxFloat64(3, []float64{1, math.NaN(), 3}))
	fmt.Println(vec.MaxFloat64(1, []float64{math.NaN()}))
	// Output:
	// 5
	// 3
	// -Inf
}

func ExampleBaseBatchMax() {
	data := []float32{1, 5, 3, 9, -2, 0} // 2 vectors of dims=3
	out := make([]float32, 2)
	vec.BaseBatchMax(data, 2, 3, out)
	fmt.Println(out)
	// Output: [5 9]
}
