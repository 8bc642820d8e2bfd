package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(records []ProductRecord) []ProductID {
	out := make([]ProductID, 0, len(records))
	for _, record := range records {
		out = append(out, record.ID)
	}
	return out
}

func TestFilterBlankQueryReturnsEverything(t *testing.T) {
	products := SampleProducts()
	assert.Equal(t, ids(products), ids(Filter(products, "")))
	assert.Equal(t, ids(products), ids(Filter(products, "   \t")))
}

func TestFilterMatchesNameOrDescriptionIgnoringCase(t *testing.T) {
	products := SampleProducts()

	assert.Equal(t, []ProductID{"1", "3"}, ids(Filter(products, "SHOES")))
	assert.Equal(t, []ProductID{"1", "2", "3"}, ids(Filter(products, "run")))
	assert.Equal(t, []ProductID{"5"}, ids(Filter(products, "heart RATE")))
}

func TestFilterToleratesMissingDescription(t *testing.T) {
	products := SampleProducts()
	assert.Equal(t, []ProductID{"4"}, ids(Filter(products, "converse")))
	assert.True(t, Matches(ProductRecord{Name: "Plain"}, "plain"))
	assert.False(t, Matches(ProductRecord{Name: "Plain"}, "fancy"))
	assert.True(t, Matches(ProductRecord{}, " "))
}

func TestFilterLowercasesWithoutFolding(t *testing.T) {
	record := ProductRecord{ID: "9", Name: "Straße Sneaker", Description: strPtr("ÉCLAIR edition")}

	assert.True(t, Matches(record, "STRAßE"))
	assert.True(t, Matches(record, "éclair"))
	assert.False(t, Matches(record, "ss"))
	assert.False(t, Matches(record, "strasse"))
	assert.Empty(t, Filter([]ProductRecord{record}, "SS"))
}

func TestFilterNoMatchIsEmpty(t *testing.T) {
	got := Filter(SampleProducts(), "submarine")
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, Filter(nil, "anything"))
}

func TestFilterIsIdempotent(t *testing.T) {
	products := SampleProducts()
	for _, query := range []string{"", "run", "o", "Power", "zzz"} {
		once := Filter(products, query)
		twice := Filter(once, query)
		assert.Equalf(t, ids(once), ids(twice), "query %q", query)
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	products := SampleProducts()
	all := Filter(products, "")
	all[0].Name = "changed"
	assert.Equal(t, "Nike Air Max", products[0].Name)
}

func TestRelatedSkipsCurrentAndHonoursLimit(t *testing.T) {
	products := SampleProducts()

	related := Related(products, "2", 0)
	assert.Equal(t, []ProductID{"1", "3", "4", "5"}, ids(related))

	assert.Equal(t, []ProductID{"2", "3"}, ids(Related(products, "1", 2)))
	assert.Empty(t, Related([]ProductRecord{{ID: "1"}}, "1", 4))

	found, ok := FindByID(products, "6")
	require.True(t, ok)
	assert.Equal(t, "Power Bank", found.Name)
	_, ok = FindByID(products, "99")
	assert.False(t, ok)
}
