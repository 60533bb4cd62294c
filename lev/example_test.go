// Copyright 2026 go-levenshtein Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lev_test

import (
	"fmt"

	"github.com/ajroetker/go-levenshtein/lev"
)

func ExampleDistance() {
	fmt.Println(lev.Distance([]byte("kitten"), []byte("sitting")))
	// Output: 3
}

func ExampleDistanceString() {
	fmt.Println(lev.DistanceString("Hallo, Welt!", "Hello, World!"))
	// Output: 4
}

func ExampleDistance_words() {
	a := []string{"Bananas", "are", "yellow"}
	b := []string{"Bananas", "are", "always", "yellow"}
	fmt.Println(lev.Distance(a, b))
	// Output: 1
}
