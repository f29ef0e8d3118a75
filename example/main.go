package main

import (
	"fmt"

	"github.com/aglyzov/flattrie"
)

func main() {
	tr, err := flattrie.NewFromItems(flattrie.Options{},
		flattrie.KV{Key: "cat", Val: 1},
		flattrie.KV{Key: "car", Val: 2},
		flattrie.KV{Key: "care", Val: 3},
		flattrie.KV{Key: "cab", Val: 4},
		flattrie.KV{Key: "ca", Val: 5},
	)
	if err != nil {
		panic(err)
	}

	tr.DebugDump()

	fmt.Println("------")

	for _, text := range []string{"care!!", "cattle", "cart", "dog"} {
		if kv, ok := tr.LongestMatch(text); ok {
			fmt.Printf("longest(%q)  -> %q = %v\n", text, kv.Key, kv.Val)
		} else {
			fmt.Printf("longest(%q)  -> no match\n", text)
		}
		if kv, ok := tr.ShortestMatch(text); ok {
			fmt.Printf("shortest(%q) -> %q = %v\n", text, kv.Key, kv.Val)
		} else {
			fmt.Printf("shortest(%q) -> no match\n", text)
		}
	}

	fmt.Println("------")

	for i := 0; i < tr.Len(); i++ {
		kv, _ := tr.At(i)
		fmt.Printf("#%d %q = %v\n", i, kv.Key, kv.Val)
	}
}
