package bitvec_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec"
)

func ExampleNewFilled() {
	bv := bitvec.NewFilled(10, true)
	bv.Set(5, false)

	fmt.Println(bv.Len(), bv)
	// Output: 10 1111101111
}

func ExampleBitVector_At() {
	bv := bitvec.NewFilled(4, false)
	bv.At(1).Set(true)
	bv.At(3).Assign(bv.At(1))

	fmt.Println(bv)
	// Output: 0101
}

func ExampleBitVector_Iter() {
	bv := bitvec.NewFilled(6, false)
	for it, end := bv.Iter(), bv.End(); !it.Equal(end); it.Advance(2) {
		it.Set(true)
	}

	fmt.Println(bv)
	// Output: 101010
}

func ExampleBitVector_Words() {
	bv := bitvec.New()
	bv.Append(true, false, true, true)

	fmt.Printf("%#x\n", bv.Words()[0])
	// Output: 0xd
}

func ExampleBitVector_Get() {
	bv := bitvec.NewFilled(3, true)

	_, err := bv.Get(3)
	fmt.Println(errors.Is(err, bitvec.ErrOutOfRange), err)
	// Output: true get: index 3 out of range for length 3
}
