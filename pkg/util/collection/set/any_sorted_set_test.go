// Copyright go-hol authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package set

import (
	"math/rand"
	"testing"
)

func Test_AnySortedSet_00(t *testing.T) {
	checkSortedSetInsert(t, 5, 10)
}

func Test_AnySortedSet_01(t *testing.T) {
	checkSortedSetInsert(t, 10, 20)
}

func Test_AnySortedSet_02(t *testing.T) {
	checkSortedSetInsert(t, 50, 30)
}

func Test_AnySortedSet_03(t *testing.T) {
	checkSortedSetInsert(t, 100, 50)
}

func Test_AnySortedSet_InsertSorted_00(t *testing.T) {
	checkSortedSetInsertSorted(t, 10, 10)
}

func Test_AnySortedSet_InsertSorted_01(t *testing.T) {
	checkSortedSetInsertSorted(t, 100, 20)
}

func Test_AnySortedSet_InsertSorted_02(t *testing.T) {
	checkSortedSetInsertSorted(t, 1000, 50)
}

func Test_AnySortedSet_Remove_00(t *testing.T) {
	set := NewAnySortedSet(order(3), order(1), order(2))
	//
	if !set.Remove(order(2)) {
		t.Errorf("expected removal of %d", 2)
	}
	//
	if set.Contains(order(2)) {
		t.Errorf("set still contains %d", 2)
	}
	//
	if set.Remove(order(2)) {
		t.Errorf("unexpected removal of %d", 2)
	}
}

// ============================================================================
// Helpers
// ============================================================================

func order(item uint) Order[uint] {
	return Order[uint]{item}
}

func generateRandomOrders(n uint, m uint) []Order[uint] {
	items := make([]Order[uint], n)
	//
	for i := range items {
		items[i] = order(uint(rand.Intn(int(m))))
	}
	//
	return items
}

func checkSortedSetInsert(t *testing.T, n uint, m uint) {
	items := generateRandomOrders(n, m)
	aset := NewAnySortedSet[Order[uint]]()
	contents := make(map[uint]bool)
	//
	for _, item := range items {
		aset.Insert(item)
		contents[item.Item] = true
	}
	// Check sorted and deduplicated
	checkSortedSet(t, aset)
	// Check membership agrees with reference
	if len(*aset) != len(contents) {
		t.Errorf("expected %d unique elements, got %d", len(contents), len(*aset))
	}
	//
	for item := range contents {
		if !aset.Contains(order(item)) {
			t.Errorf("set missing element %d", item)
		}
	}
}

func checkSortedSetInsertSorted(t *testing.T, n uint, m uint) {
	left := NewAnySortedSet(generateRandomOrders(n, m)...)
	right := NewAnySortedSet(generateRandomOrders(n, m)...)
	// Clone left before mutation
	expected := make(map[uint]bool)
	//
	for _, item := range *left {
		expected[item.Item] = true
	}
	//
	for _, item := range *right {
		expected[item.Item] = true
	}
	//
	left.InsertSorted(right)
	//
	checkSortedSet(t, left)
	//
	if len(*left) != len(expected) {
		t.Errorf("expected %d unique elements, got %d", len(expected), len(*left))
	}
}

func checkSortedSet(t *testing.T, set *AnySortedSet[Order[uint]]) {
	items := *set
	//
	for i := 1; i < len(items); i++ {
		if items[i-1].Cmp(items[i]) >= 0 {
			t.Errorf("set unsorted at index %d", i)
		}
	}
}
