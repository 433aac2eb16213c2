package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeDefines(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[string]string{"B": "2", "A": "1"})
	b := maps.All(map[string]string{"C": "3", "A": "4"})

	var keys, values []string
	for key, value := range MergeDefines(a, b) {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]string{"A", "B", "C"}, keys)
	assert.Equal([]string{"4", "2", "3"}, values)

	keys = nil
	for key := range MergeDefines(a, b) {
		keys = append(keys, key)
		if key == "B" {
			break
		}
	}
	assert.Equal([]string{"A", "B"}, keys)

	assert.Empty(maps.Collect(MergeDefines()))
}
