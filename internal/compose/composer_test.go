package compose

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeFirstEntryVariant(t *testing.T) {
	msg := Compose(0)
	assert.True(t, strings.HasPrefix(msg, "i am here."), "got %q", msg)
}

func TestComposeReferencesPriorCount(t *testing.T) {
	msg := Compose(1)
	assert.Contains(t, msg, "1 others have passed through.")
}

func TestComposeFirstDiffersFromLater(t *testing.T) {
	first := Compose(0)
	for count := 1; count <= 10; count++ {
		assert.NotEqual(t, first, Compose(count), "count %d", count)
	}
}

func TestComposeDeterministic(t *testing.T) {
	for count := 0; count <= 25; count++ {
		assert.Equal(t, Compose(count), Compose(count), "count %d", count)
	}
}

func TestComposeAlwaysCarriesAddition(t *testing.T) {
	for count := 0; count <= 25; count++ {
		assert.Contains(t, Compose(count), "i add:", "count %d", count)
	}
}

func TestComposeEmbedsCount(t *testing.T) {
	for count := 1; count <= 25; count++ {
		assert.Contains(t, Compose(count), fmt.Sprintf("%d", count), "count %d", count)
	}
}
