package rules_test

import (
	"fmt"

	"github.com/surrealdb/repeater.go/pkg/models"
)

func recipe(n int, title, course, cuisine string) models.Record {
	return models.Record{
		"id":           fmt.Sprintf("r%d", n),
		"title":        title,
		"course":       course,
		"cuisine":      cuisine,
		"_createdDate": fmt.Sprintf("2024-01-%02dT09:00:00Z", n),
	}
}

func recipes() []models.Record {
	return []models.Record{
		recipe(1, "Spaghetti Carbonara", "dinner", "Italian"),
		recipe(2, "Caesar Salad", "lunch", "American"),
		recipe(3, "Chocolate Lava Cake", "dessert", "French"),
		recipe(4, "Beef Stew", "dinner", "Irish"),
		recipe(5, "Chicken Wrap", "lunch", "Mexican"),
		recipe(6, "Pancakes", "breakfast", "American"),
		recipe(7, "Apple Pie", "dessert", "American"),
		recipe(8, "Avocado Toast", "breakfast", "Australian"),
		recipe(9, "Blueberry Muffins", "breakfast", "American"),
		recipe(10, "Eggs Benedict", "breakfast", "American"),
	}
}

func team() []models.Record {
	return []models.Record{
		{"id": "t1", "name": "Ada Park", "role": "Engineering"},
		{"id": "t2", "name": "Ben Ortiz", "role": "Design"},
		{"id": "t3", "name": "Cleo Wu", "role": "Marketing"},
		{"id": "t4", "name": "Dev Shah", "role": "Engineering"},
		{"id": "t5", "name": "Eli Moss", "role": "Sales"},
		{"id": "t6", "name": "Fay Lund", "role": "Design"},
	}
}

func ids(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = fmt.Sprint(r["id"])
	}
	return out
}
