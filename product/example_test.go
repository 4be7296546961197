package product_test

import (
	"fmt"

	"github.com/on-the-ground/typed_basics_go/product"
)

func ExampleMostExpensive() {
	products, err := product.Decode([]byte(`[
		{"name": "Notebook", "price": 3.5},
		{"name": "Backpack", "price": 42},
		{"name": "Pencil", "price": 0.75}
	]`))
	if err != nil {
		panic(err)
	}

	best, ok := product.MostExpensive(products).Get()
	fmt.Println(best.Name, best.Price, ok)

	_, ok = product.MostExpensive(nil).Get()
	fmt.Println(ok)
	// Output:
	// Backpack 42 true
	// false
}
