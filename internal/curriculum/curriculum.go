// Package curriculum holds the catalog of teachable TEKS standards.
// The builtin list covers the 5th-grade math standards the academy
// ships with; districts can extend it with imported standards. A
// catalog is immutable once built.
package curriculum

import "github.com/example/hootacademy/pkg/models"

// builtin is the 5th-grade math catalog
var builtin = []models.Standard{
	{
		ID:          "5.2A",
		Code:        "5.2(A)",
		Category:    "Number & Operations",
		Description: "Represent the value of the digit in decimals through the thousandths.",
	},
	{
		ID:          "5.2B",
		Code:        "5.2(B)",
		Category:    "Number & Operations",
		Description: "Compare and order two decimals to thousandths and represent comparisons using symbols.",
	},
	{
		ID:          "5.3E",
		Code:        "5.3(E)",
		Category:    "Number & Operations",
		Description: "Solve for products of decimals to the hundredths.",
	},
	{
		ID:          "5.3K",
		Code:        "5.3(K)",
		Category:    "Algebraic Reasoning",
		Description: "Add and subtract positive rational numbers fluently.",
	},
	{
		ID:          "5.4B",
		Code:        "5.4(B)",
		Category:    "Algebraic Reasoning",
		Description: "Represent and solve multi-step problems involving the four operations.",
	},
	{
		ID:          "5.4H",
		Code:        "5.4(H)",
		Category:    "Geometry & Measurement",
		Description: "Represent and solve problems related to perimeter and/or area and related to volume.",
	},
	{
		ID:          "5.5A",
		Code:        "5.5(A)",
		Category:    "Geometry & Measurement",
		Description: "Classify two-dimensional figures in a hierarchy of sets and subsets using attributes.",
	},
	{
		ID:          "5.9A",
		Code:        "5.9(A)",
		Category:    "Data Analysis",
		Description: "Represent categorical data with bar graphs or frequency tables.",
	},
	{
		ID:          "5.9C",
		Code:        "5.9(C)",
		Category:    "Data Analysis",
		Description: "Solve one- and two-step problems using data from a frequency table, dot plot, bar graph, or stem-and-leaf plot.",
	},
}

// Catalog is an ordered, immutable set of standards
type Catalog struct {
	standards []models.Standard
	byID      map[string]models.Standard
}

// NewCatalog builds a catalog from the builtin standards plus any
// imported extras. Extras with an ID already present are ignored.
func NewCatalog(extras ...models.Standard) *Catalog {
	c := &Catalog{
		standards: make([]models.Standard, 0, len(builtin)+len(extras)),
		byID:      make(map[string]models.Standard, len(builtin)+len(extras)),
	}
	for _, s := range builtin {
		c.add(s)
	}
	for _, s := range extras {
		c.add(s)
	}
	return c
}

func (c *Catalog) add(s models.Standard) {
	if s.ID == "" {
		return
	}
	if _, exists := c.byID[s.ID]; exists {
		return
	}
	c.byID[s.ID] = s
	c.standards = append(c.standards, s)
}

// All returns the standards in catalog order. The returned slice is a
// copy; callers may not mutate the catalog through it.
func (c *Catalog) All() []models.Standard {
	out := make([]models.Standard, len(c.standards))
	copy(out, c.standards)
	return out
}

// ByID looks up a standard by its ID
func (c *Catalog) ByID(id string) (models.Standard, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Len returns the number of standards in the catalog
func (c *Catalog) Len() int {
	return len(c.standards)
}

// Categories returns the distinct categories in first-seen order
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.standards {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}
