package sort_test

import (
	"fmt"

	"github.com/exascience/keysort/sort"
)

type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("%s: %d", p.Name, p.Age)
}

func age(p Person) int { return p.Age }

func Example() {
	e := sort.New()

	people := []Person{
		{"Bob", 31},
		{"John", 42},
		{"Michael", 17},
		{"Jenny", 26},
	}

	fmt.Println(people)
	sort.SortByKey(e, people, age)
	fmt.Println(people)

	people = []Person{
		{"Bob", 31},
		{"John", 42},
		{"Michael", 17},
		{"Jenny", 26},
	}

	sort.NthElementByKey(e, people, 1, age)
	fmt.Println(people[1])

	// Output:
	// [Bob: 31 John: 42 Michael: 17 Jenny: 26]
	// [Michael: 17 Jenny: 26 Bob: 31 John: 42]
	// Jenny: 26
}

func ExampleSort() {
	data := []int32{5, 3, 1, 4, 2}
	sort.Sort(sort.New(), data)
	fmt.Println(data)

	// Output:
	// [1 2 3 4 5]
}

func ExampleSortByKey() {
	order := []int{30, 10, 20}
	indices := []int{0, 1, 2}
	sort.SortByKey(sort.New(), indices, func(i int) int { return order[i] })
	fmt.Println(indices)

	// Output:
	// [1 2 0]
}

func ExampleNthElement() {
	data := []float64{9, 1, 8, 2, 7, 3, 6, 4, 5}
	sort.NthElement(sort.New(), data, len(data)/2)
	fmt.Println(data[len(data)/2])

	// Output:
	// 5
}
